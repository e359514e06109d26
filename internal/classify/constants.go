package classify

// Scoring constants. These were tuned empirically against real brand sites;
// changing any of them is a behavior change, not a refactor.
const (
	scoreSaturationVivid  = 40  // saturation > 80
	scoreSaturationHigh   = 25  // saturation > 60
	scoreSaturationMid    = 15  // saturation > 40
	scoreGrayscalePenalty = -20 // saturation < 10

	scoreLightnessSweet   = 20  // lightness in [25,75]
	scoreLightnessOK      = 10  // lightness in [15,85]
	scoreLightnessExtreme = -30 // lightness > 95 or < 5

	scoreCommonColorPenalty    = -25
	scoreFrameworkDynamic      = -200 // matched a detected framework's defaults
	scoreFrameworkStatic       = -150 // static fallback, no detection input
	scoreBrowserDefaultPenalty = -100

	scoreContrastBonus   = 15 // contrast vs white or black > 4.5
	contrastBonusMinimum = 4.5

	scoreUsageSweetSpot = 10  // relative frequency in [1%,30%]
	scoreUsageDominant  = -15 // relative frequency > 50%

	scoreSemanticBase      = 100
	scoreEarlinessMax      = 15 // 15 - 2*firstSeenIndex, floor 0
	scoreShallowDepthMax   = 10 // 10 - domDepth, floor 0
	scoreAboveFold         = 8  // document position in the first third
	scoreWeightTier70      = 10
	scoreWeightTier80      = 15
	scoreWeightTier90      = 25
	scoreHeaderStrongBonus = 20 // header context with weight >= 90
	scoreNoSemanticSignal  = -20

	scoreCustomPropertyBonus = 75
)

// Role-assignment thresholds and bands.
const (
	primaryBaseThreshold    = 100
	primaryVibrancyDiscount = 20 // threshold drops by this for saturation > 60
	primaryMinSaturation    = 30
	secondaryThreshold      = 50

	destructiveHueLow  = 345 // red band wraps zero
	destructiveHueHigh = 15
	destructiveMinSat  = 50

	backgroundMinRelFreq = 20
	foregroundMinRelFreq = 30

	accentMinSaturation = 60
	accentMaxRelFreq    = 50

	borderMaxSaturation = 25
	mutedMaxSaturation  = 30

	aboveFoldPosition = 0.33
)

package game

// Mode selects which level catalogue a session runs through.
type Mode int

const (
	ModeNone Mode = iota
	ModeCampaign
	ModeTraining
)

func (m Mode) String() string {
	switch m {
	case ModeCampaign:
		return "campaign"
	case ModeTraining:
		return "training"
	case ModeNone:
		return "none"
	default:
		return "unknown"
	}
}

// fixed is a helper for optional LevelConfig fields.
func fixed(v float64) *float64 { return &v }

// CampaignLevels is the authored progression. Distances and wind bands
// escalate; two levels pin temperature at the extremes so the density
// correction becomes readable in the feedback.
var CampaignLevels = []LevelConfig{
	{
		ID: 1, Name: "First Zero",
		Briefing: "Calm lane at roughly 300 m. Dial the card elevation and confirm your zero.",
		MinDist: 280, MaxDist: 320,
		MinWind: 0, MaxWind: 0,
		FixedTemp: fixed(standardTemp), DisableSway: true,
	},
	{
		ID: 2, Name: "Stretching Out",
		Briefing: "Mid-range target, still air. Trust the card, watch your drop.",
		MinDist: 380, MaxDist: 450,
		MinWind: 0, MaxWind: 1,
		FixedTemp: fixed(standardTemp),
	},
	{
		ID: 3, Name: "Breeze Reading",
		Briefing: "Light wind on the flags. Read the bearing before you dial.",
		MinDist: 480, MaxDist: 560,
		MinWind: 2, MaxWind: 5,
	},
	{
		ID: 4, Name: "Heat Haze",
		Briefing: "Hot afternoon. Thin air drops the round less than the card says.",
		MinDist: 550, MaxDist: 650,
		MinWind: 1, MaxWind: 4,
		FixedTemp: fixed(32),
	},
	{
		ID: 5, Name: "Cold Bore",
		Briefing: "Well below freezing. Dense air steals more elevation than you expect.",
		MinDist: 600, MaxDist: 700,
		MinWind: 2, MaxWind: 5,
		FixedTemp: fixed(-8),
	},
	{
		ID: 6, Name: "Gusting Cross",
		Briefing: "Full-value wind from the right. Hold against it or go home.",
		MinDist: 700, MaxDist: 850,
		MinWind: 4, MaxWind: 8,
		FixedWindDir: fixed(90),
	},
	{
		ID: 7, Name: "Long Walk",
		Briefing: "Past 850 m everything compounds. Work the card and the flags together.",
		MinDist: 850, MaxDist: 1000,
		MinWind: 3, MaxWind: 7,
	},
	{
		ID: 8, Name: "The Kilometre",
		Briefing: "The far berm. Every tenth of a MIL matters now.",
		MinDist: 1000, MaxDist: 1200,
		MinWind: 4, MaxWind: 9,
	},
}

// TrainingLevels are fixed drills for practising one variable at a time.
var TrainingLevels = []LevelConfig{
	{
		ID: 101, Name: "Static 300",
		Briefing: "Fixed 300 m, no wind, standard temperature. Pure elevation drill.",
		MinDist: 300, MaxDist: 300,
		MinWind: 0, MaxWind: 0,
		FixedTemp: fixed(standardTemp), DisableSway: true,
	},
	{
		ID: 102, Name: "Static 600",
		Briefing: "Fixed 600 m with a steady left-to-right 3 m/s. Learn the hold.",
		MinDist: 600, MaxDist: 600,
		MinWind: 3, MaxWind: 3,
		FixedWindDir: fixed(270), FixedTemp: fixed(standardTemp),
	},
	{
		ID: 103, Name: "Wind Drill",
		Briefing: "Distance is known, wind is not. Read the flag, then commit.",
		MinDist: 500, MaxDist: 500,
		MinWind: 0, MaxWind: 6,
		FixedTemp: fixed(standardTemp),
	},
	{
		ID: 104, Name: "Random Field",
		Briefing: "Anything from 300 to 1100 m, any wind, any weather.",
		MinDist: 300, MaxDist: 1100,
		MinWind: 0, MaxWind: 8,
	},
}

// LevelsFor returns the read-only catalogue for a mode.
func LevelsFor(m Mode) []LevelConfig {
	switch m {
	case ModeCampaign:
		return CampaignLevels
	case ModeTraining:
		return TrainingLevels
	default:
		return nil
	}
}

package domain

// PersonaRecord is the structured persona returned by the generation call.
// Every field is required by the response schema.
type PersonaRecord struct {
	Name        string   `json:"name"`
	Catchphrase string   `json:"catchphrase"`
	VisualImage string   `json:"visualImage"`
	Keywords    []string `json:"keywords"`

	Attributes         PersonaAttributes `json:"attributes"`
	PrivateLife        PrivateLife       `json:"privateLife"`
	BackgroundAnalysis string            `json:"backgroundAnalysis"`

	Specs           SpecPreference  `json:"specs"`
	Enshutsu        EnshutsuProfile `json:"enshutsu"`
	DeveloperAdvice DeveloperAdvice `json:"developerAdvice"`
}

// PersonaAttributes holds the demographic summary and play style.
type PersonaAttributes struct {
	Basic     string    `json:"basic"`
	PlayStyle PlayStyle `json:"playStyle"`
}

// PlayStyle describes when, how much and where the persona plays.
type PlayStyle struct {
	Time     string `json:"time"`
	Budget   string `json:"budget"`
	Hall     string `json:"hall"`
	Literacy string `json:"literacy"`
}

// PrivateLife is the context outside the hall.
type PrivateLife struct {
	DailyRoutine string   `json:"dailyRoutine"`
	Hobbies      []string `json:"hobbies"`
	Stressors    []string `json:"stressors"`
}

// SpecPreference is the desired machine spec and the latent need behind it.
type SpecPreference struct {
	Summary    string   `json:"summary"`
	Details    []string `json:"details"`
	LatentNeed string   `json:"latentNeed"`
}

// EnshutsuProfile is the presentation (演出) preference and the
// psychological insight that explains it.
type EnshutsuProfile struct {
	Style                string   `json:"style"`
	Behaviors            []string `json:"behaviors"`
	PsychologicalInsight string   `json:"psychologicalInsight"`
}

// DeveloperAdvice lists what to build and what to avoid.
type DeveloperAdvice struct {
	Dos   []string `json:"dos"`
	Donts []string `json:"donts"`
}

// GenerateMetadata describes a successful generation.
type GenerateMetadata struct {
	RequestID string `json:"requestId"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
}

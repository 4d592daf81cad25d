package prompt

import "fmt"

func FallbackUserPersonaPrompt(data UserPersonaData) string {
	return fmt.Sprintf(`Role: Expert Pachinko Product Planner and Behavioral Psychologist.
Task: Create a highly detailed target persona for a modern Smart Pachinko (e-machine) based on the provided user constraints.

User Profile Inputs:
1. Basic Attributes: %s
2. Time Constraints: %s
3. Budget Constraints: %s
4. Hall Selection Logic: %s
5. Game Literacy / Attitude: %s
6. Core Desire / Reward Source: %s
7. Additional Notes: %s

Process:
1. Define a catchy Name and Tagline.
2. Synthesize the provided inputs into a cohesive 'Basic Attributes' and 'Play Style'.
3. **Private Life Deep Dive**: Imagine their daily routine, hobbies, and stressors. Be specific and human.
4. **Spec Analysis**: Analyze the 'Core Desire' to determine the 'Spec' (Risk/Return). **Crucially, identify the 'Latent Need' (unconscious void they are filling).**
5. **Enshutsu Analysis**: Analyze 'Literacy' and 'Time' for 'UI/Flow'. **Crucially, identify the 'Psychological Insight' (why they behave this way).**
6. Provide actionable advice for developers.

Output Language: Japanese.
Ensure the tone is professional yet empathetic to the player's psychology.
The "dailyRoutine" should look like a timeline (e.g. "07:00 起床 -> ...").
`,
		data.BasicAttributes,
		data.Time,
		data.Budget,
		data.Hall,
		data.Literacy,
		data.Reward,
		data.Note,
	)
}

func FallbackProductPersonaPrompt(data ProductPersonaData) string {
	return fmt.Sprintf(`Role: Expert Pachinko Product Planner and Behavioral Psychologist.
Task: Reverse Engineer the target audience based on the provided Product Concept.

Product Concept (Input):
"%s"

Additional Notes: %s

Analysis Goal:
Analyze the specs, gameplay flow, and IP theme described above.
Deduce who is most likely to play this specific machine.
- What kind of life do they lead that makes them crave THIS specific spec (e.g., high speed, high risk)?
- Why do they prefer THIS specific presentation style (e.g., simple flashes vs. complex story)?

Create a highly detailed target persona that fits this product perfectly.

Process:
1. Define a catchy Name and Tagline for this user.
2. Profile their Demographics (Attributes) and Play Style (Time/Budget/Literacy) based on the product's requirements (e.g., High risk machine = High budget or desperate user).
3. **Private Life Deep Dive**: Imagine their daily routine and stressors that drive them to this specific machine.
4. **Spec Analysis**: Confirm the specs they like (based on input) and explain the **'Latent Need'** (Why does this product heal or excite them?).
5. **Enshutsu Analysis**: Explain the **'Psychological Insight'** (Why does this UI/Flow matches their mental state?).
6. Provide actionable advice for developers to further optimize the product for this specific person.

Output Language: Japanese.
Ensure the tone is professional yet empathetic to the player's psychology.
The "dailyRoutine" should look like a timeline.
`,
		data.Concept,
		data.Note,
	)
}

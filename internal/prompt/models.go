package prompt

// UserPersonaData feeds the user-driven template.
type UserPersonaData struct {
	BasicAttributes string
	Time            string
	Budget          string
	Hall            string
	Literacy        string
	Reward          string
	Note            string
}

// ProductPersonaData feeds the reverse-engineering template.
type ProductPersonaData struct {
	Concept string
	Note    string
}

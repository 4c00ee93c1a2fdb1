package repositories

// PrompterRepository asks the user questions and prints plain lines back.
type PrompterRepository interface {
	Ask(question string) (string, error)
	Println(line string)
}

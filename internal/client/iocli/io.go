package iocli

//go:generate go tool moq -out io_mock.go . IO

// IO abstracts terminal input/output so CLI commands are testable.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

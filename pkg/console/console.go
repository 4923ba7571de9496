package console

// Prepare adjusts the hosting terminal for this process' output: UTF-8
// output encoding and virtual terminal processing, where the platform knows
// these concepts. Redirected output has no console; in this case Prepare is
// a no-op.
func Prepare() error {
	return prepare()
}

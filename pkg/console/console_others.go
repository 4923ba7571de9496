//go:build !windows

package console

func prepare() error {
	return nil
}

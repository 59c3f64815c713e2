package vim

import "github.com/atotto/clipboard"

// SystemClipboard is a ClipboardProvider backed by the OS clipboard.
type SystemClipboard struct{}

// Available reports whether a clipboard utility was found.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// Get returns the clipboard text.
func (SystemClipboard) Get() (string, error) {
	return clipboard.ReadAll()
}

// Set replaces the clipboard text.
func (SystemClipboard) Set(content string) error {
	return clipboard.WriteAll(content)
}

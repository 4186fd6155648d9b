package domain

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyName indicates no game name tokens were supplied.
	ErrEmptyName = errors.New("game name is required")
	// ErrForbiddenCharacter indicates the game name contains a backtick.
	ErrForbiddenCharacter = errors.New("game name contains a backtick")
)

// Characters that would trigger markdown formatting when the name is echoed
// back into a chat message.
const markdownEscapeSet = "-_+*\"#=.⋅\\<>{}"

// JoinName joins raw name tokens with single spaces.
func JoinName(tokens []string) string {
	return strings.Join(tokens, " ")
}

// SanitizeName validates the raw name tokens and returns a markdown-safe
// display name.
//
// Backticks are rejected outright rather than escaped because they break the
// platform's code formatting. Every other markdown-significant character is
// escaped with a preceding backslash. The function is pure and deterministic;
// escaping is not idempotent in general, only deterministic per input.
func SanitizeName(tokens []string) (string, error) {
	name := JoinName(tokens)
	if name == "" {
		return "", ErrEmptyName
	}
	if strings.ContainsRune(name, '`') {
		return "", ErrForbiddenCharacter
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(markdownEscapeSet, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Package docs holds no-op helpers that let tests read like a story.
//
// The strings document the test case in the source, they are not evaluated.
package docs

func Description(description string) {
}

func Given(given string) {
}

func When(when string) {
}

func Then(then string) {
}

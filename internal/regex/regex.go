package regex

import "regexp"

var (
	// GitHub pull request URLs. GitHubPRURL matches anywhere in the input and
	// captures owner, repo and number; GitHubPRURLStrict must match the whole string.
	GitHubPRURL       = regexp.MustCompile(`github\.com/([\w-]+)/([\w-]+)/pull/(\d+)`)
	GitHubPRURLStrict = regexp.MustCompile(`^https://github\.com/[\w-]+/[\w-]+/pull/\d+$`)

	// AI output cleanup
	MarkdownFence = regexp.MustCompile("(?s)^```(?:markdown|md)?\n?(.*?)\n?```$")
)

package api

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveChannelID accepts a raw channel ID or a youtube.com/channel/<id> URL.
// Raw IDs are passed through; the API decides whether they exist.
func ResolveChannelID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: channel id is required", ErrInvalidInput)
	}

	if !strings.Contains(input, "youtube.com") && !strings.Contains(input, "youtu.be") {
		return input, nil
	}

	if !strings.Contains(input, "://") {
		input = "https://" + input
	}
	parsedURL, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("%w: invalid URL: %v", ErrInvalidInput, err)
	}

	switch {
	case strings.HasSuffix(parsedURL.Host, "youtube.com"):
		path := parsedURL.Path
		if strings.HasPrefix(path, "/channel/") {
			// Format: youtube.com/channel/UC...
			id := strings.Split(strings.TrimPrefix(path, "/channel/"), "/")[0]
			if id != "" {
				return id, nil
			}
		}
		// /c/, /user/ and /@handle need a search call to resolve
		return "", fmt.Errorf("%w: only /channel/<id> URLs are supported", ErrInvalidInput)
	case strings.HasSuffix(parsedURL.Host, "youtu.be"):
		return "", fmt.Errorf("%w: youtu.be URLs are video URLs, not channel URLs", ErrInvalidInput)
	}

	return "", fmt.Errorf("%w: unsupported YouTube URL format", ErrInvalidInput)
}

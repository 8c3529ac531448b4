package contact

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// defaultMaxURLs is the number of links tolerated before a message is flagged
	defaultMaxURLs = 2
	// defaultCapsMinLetters is the minimum letter count before the
	// capitalization check applies; short enthusiastic all-caps notes pass
	defaultCapsMinLetters = 20
	// defaultCapsRatio is the uppercase fraction above which a message is flagged
	defaultCapsRatio = 0.8
)

// urlPattern matches http://, https://, and www. links followed by
// non-whitespace
var urlPattern = regexp.MustCompile(`(?i)(https?://|www\.)\S+`)

// defaultKeywords are phrases that flag a message as spam when present,
// matched case-insensitively as substrings
var defaultKeywords = []string{
	"viagra",
	"cialis",
	"pharmacy",
	"casino",
	"lottery",
	"winner",
	"congratulations you won",
	"click here now",
	"limited time offer",
	"act now",
	"buy now",
	"credit card",
	"cash prize",
	"work from home",
	"make money fast",
	"investment opportunity",
	"earn extra cash",
	"nigerian prince",
	"inheritance",
	"western union",
	"wire transfer",
}

// SpamResult is the outcome of a spam check
type SpamResult struct {
	Spam   bool
	Reason string
}

// Detector screens messages with rule-based heuristics: URL density, a
// keyword list, and capitalization ratio, checked in that order with the
// first match winning. It is best-effort with no false-positive guarantees.
type Detector struct {
	maxURLs        int
	capsMinLetters int
	capsRatio      float64
	keywords       []string
}

// DetectorOption configures the Detector
type DetectorOption func(*Detector)

// WithMaxURLs sets the number of links tolerated before flagging
func WithMaxURLs(max int) DetectorOption {
	return func(d *Detector) {
		if max > 0 {
			d.maxURLs = max
		}
	}
}

// WithCapsThreshold sets the minimum letter count and uppercase fraction for
// the capitalization check
func WithCapsThreshold(minLetters int, ratio float64) DetectorOption {
	return func(d *Detector) {
		if minLetters > 0 {
			d.capsMinLetters = minLetters
		}

		if ratio > 0 {
			d.capsRatio = ratio
		}
	}
}

// WithKeywords replaces the default keyword list
func WithKeywords(keywords []string) DetectorOption {
	return func(d *Detector) {
		if len(keywords) > 0 {
			d.keywords = keywords
		}
	}
}

// NewDetector creates a Detector with the default thresholds
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{
		maxURLs:        defaultMaxURLs,
		capsMinLetters: defaultCapsMinLetters,
		capsRatio:      defaultCapsRatio,
		keywords:       defaultKeywords,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Check screens a message for spam indicators
func (d *Detector) Check(message string) SpamResult {
	if count := countURLs(message); count > d.maxURLs {
		return SpamResult{
			Spam:   true,
			Reason: fmt.Sprintf("Message contains too many links (%d found, maximum %d allowed)", count, d.maxURLs),
		}
	}

	lower := strings.ToLower(message)
	for _, keyword := range d.keywords {
		if strings.Contains(lower, keyword) {
			// the matched keyword is withheld to avoid helping evasion
			return SpamResult{Spam: true, Reason: "Message contains suspicious content"}
		}
	}

	if letters, uppers := countLetters(message); letters > d.capsMinLetters {
		if float64(uppers)/float64(letters) > d.capsRatio {
			return SpamResult{Spam: true, Reason: "Message contains excessive capitalization"}
		}
	}

	return SpamResult{}
}

// countURLs counts link-shaped substrings in the text
func countURLs(text string) int {
	return len(urlPattern.FindAllString(text, -1))
}

// countLetters counts ASCII letters and uppercase ASCII letters in the text
func countLetters(text string) (letters, uppers int) {
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			letters++
			uppers++
		case r >= 'a' && r <= 'z':
			letters++
		}
	}

	return letters, uppers
}

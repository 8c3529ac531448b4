package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector_TooManyURLs(t *testing.T) {
	d := NewDetector()

	res := d.Check("Check out https://a.example https://b.example and www.c.example now")

	assert.True(t, res.Spam)
	assert.Contains(t, res.Reason, "3 found")
	assert.Contains(t, res.Reason, "maximum 2 allowed")
}

func TestDetector_URLsAtLimitPass(t *testing.T) {
	d := NewDetector()

	res := d.Check("My site is https://example.com and my blog is www.example.org, happy to chat")

	assert.False(t, res.Spam)
}

func TestDetector_Keyword(t *testing.T) {
	d := NewDetector()

	res := d.Check("Exclusive Investment Opportunity just for you")

	assert.True(t, res.Spam)
	// the matched keyword is not disclosed
	assert.Equal(t, "Message contains suspicious content", res.Reason)
}

func TestDetector_ExcessiveCaps(t *testing.T) {
	d := NewDetector()

	res := d.Check("THIS IS A VERY IMPORTANT MESSAGE PLEASE READ IT NOW")

	assert.True(t, res.Spam)
	assert.Equal(t, "Message contains excessive capitalization", res.Reason)
}

func TestDetector_ShortAllCapsPasses(t *testing.T) {
	d := NewDetector()

	// under the letter floor, enthusiastic caps are fine
	res := d.Check("GREAT TALK!")

	assert.False(t, res.Spam)
}

func TestDetector_OrdinaryMessagePasses(t *testing.T) {
	d := NewDetector()

	res := d.Check("Hi Blake, I enjoyed your essay on generalist leaders. Would love to connect about a role at my company.")

	assert.False(t, res.Spam)
}

func TestDetector_URLCheckWinsOverKeyword(t *testing.T) {
	d := NewDetector()

	// first matching check short-circuits
	res := d.Check("casino casino https://a.example https://b.example https://c.example")

	assert.True(t, res.Spam)
	assert.Contains(t, res.Reason, "too many links")
}

func TestDetector_ConfigurableThresholds(t *testing.T) {
	d := NewDetector(WithMaxURLs(5), WithCapsThreshold(100, 0.9))

	res := d.Check("https://a.example https://b.example https://c.example")
	assert.False(t, res.Spam)

	res = d.Check(strings.Repeat("LOUD ", 10))
	assert.False(t, res.Spam)
}

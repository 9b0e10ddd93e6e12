package synth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/zarlcorp/zspecimen/internal/specimen"
)

var errNoImage = errors.New("no inline image in response")

// portraitResult is either a generated portrait or a placeholder.
type portraitResult interface {
	ref() string
}

type portraitResolved struct {
	uri string
}

func (p portraitResolved) ref() string { return p.uri }

type portraitFallback struct {
	uri   string
	cause error
}

func (p portraitFallback) ref() string { return p.uri }

func portraitPrompt(r specimen.RawRecord) string {
	return fmt.Sprintf("A professional, clean ID card headshot of a %s %s. "+
		"Solid white or light blue background, neutral expression, "+
		"even studio lighting, high resolution photography.",
		r.Gender, r.InstitutionType.AgeBracket())
}

// placeholderURL returns a randomized placeholder portrait of the form
// <base>/seed/<token>/300/400.
func (s *Synthesizer) placeholderURL() string {
	return strings.TrimRight(s.cfg.PlaceholderBase, "/") + "/seed/" + specimen.Nonce(6) + "/300/400"
}

// SynthesizePortrait returns a portrait URI for r. It never fails: any
// generation problem degrades to a placeholder image URL.
func (s *Synthesizer) SynthesizePortrait(ctx context.Context, r specimen.RawRecord) string {
	res := s.resolvePortrait(ctx, r)
	if fb, ok := res.(portraitFallback); ok {
		s.log.Warn("portrait generation failed, using placeholder",
			zap.String("record_id", r.RecordID),
			zap.Error(fb.cause),
		)
	}
	return res.ref()
}

func (s *Synthesizer) resolvePortrait(ctx context.Context, r specimen.RawRecord) (res portraitResult) {
	// a panicking client must not take the record down with it
	defer func() {
		if p := recover(); p != nil {
			res = portraitFallback{uri: s.placeholderURL(), cause: fmt.Errorf("panic: %v", p)}
		}
	}()

	resp, err := s.gen.GenerateContent(ctx, s.cfg.ImageModel, genai.Text(portraitPrompt(r)), nil)
	if err != nil {
		return portraitFallback{uri: s.placeholderURL(), cause: err}
	}

	uri, err := inlineImageURI(resp)
	if err != nil {
		return portraitFallback{uri: s.placeholderURL(), cause: err}
	}
	return portraitResolved{uri: uri}
}

// inlineImageURI encodes the first inline image part as a data URI.
func inlineImageURI(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errNoImage
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := part.InlineData.MIMEType
			if !strings.HasPrefix(mime, "image/") {
				return "", fmt.Errorf("inline data has non-image mime type %q", mime)
			}
			return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
		}
	}
	return "", errNoImage
}

package omniparser

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/AutumnsGrove/OmniParser-sub001/engine"
	"github.com/AutumnsGrove/OmniParser-sub001/model"
)

// ParsePDFDate parses a PDF info-dictionary date of the form
// "D:YYYYMMDDHHMMSS". The "D:" prefix and at least 14 digits are required;
// any timezone suffix after the 14 digits is ignored. The second return
// value reports whether a date was parsed.
func ParsePDFDate(s string) (time.Time, bool) {
	if !strings.HasPrefix(s, "D:") {
		return time.Time{}, false
	}
	digits := s[2:]
	if len(digits) < 14 {
		return time.Time{}, false
	}
	digits = digits[:14]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return time.Time{}, false
		}
	}
	t, err := time.Parse("20060102150405", digits)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// KeywordsToTags splits a PDF keywords string on commas into trimmed,
// non-empty tags, order preserved.
func KeywordsToTags(keywords string) []string {
	if keywords == "" {
		return nil
	}
	var tags []string
	for _, k := range strings.Split(keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			tags = append(tags, k)
		}
	}
	return tags
}

// extractMetadata maps the engine's info dictionary into the shared
// metadata model. Title falls back to the source filename stem. Custom
// fields always carry page_count, creator, producer and pdf_version
// ("Unknown" when the header version is unavailable).
func extractMetadata(doc engine.Document, path string) model.Metadata {
	info := doc.Info()

	title := strings.TrimSpace(info.Title)
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	version := info.Version
	if version == "" {
		version = "Unknown"
	}

	meta := model.Metadata{
		Title:   title,
		Author:  strings.TrimSpace(info.Author),
		Subject: strings.TrimSpace(info.Subject),
		Tags:    KeywordsToTags(info.Keywords),
		Custom: map[string]string{
			"page_count":  strconv.Itoa(doc.PageCount()),
			"creator":     info.Creator,
			"producer":    info.Producer,
			"pdf_version": version,
		},
	}

	if created, ok := ParsePDFDate(info.CreationDate); ok {
		meta.CreationDate = created
		meta.HasCreated = true
	}
	return meta
}

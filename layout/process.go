package layout

import (
	"github.com/AutumnsGrove/OmniParser-sub001/model"
	"github.com/AutumnsGrove/OmniParser-sub001/segment"
)

// ProcessHeadings runs the full heading pipeline over extracted text:
// detect heading candidates from the blocks, splice markdown markers into
// the content, then segment the result into chapters within the
// [minChapterLevel, maxChapterLevel] range. Non-empty content always yields
// at least one chapter. Returns the markdown text and the chapters.
func ProcessHeadings(blocks []Block, content string, maxWords int, minSize float64, minChapterLevel, maxChapterLevel int) (string, []model.Chapter) {
	headings := DetectHeadings(blocks, maxWords, minSize)
	markdown := ConvertHeadingsToMarkdown(content, headings)
	chapters := segment.Segment(markdown, minChapterLevel, maxChapterLevel)
	return markdown, chapters
}

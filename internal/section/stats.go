package section

import "github.com/jyothish28/intelligent-document-analyst/internal/fragment"

// statsSamplePages bounds the font survey to the front of the document,
// where heading styles are established.
const statsSamplePages = 5

// fontStats summarizes the font sizes observed in a document sample.
type fontStats struct {
	avgSize    float64
	maxSize    float64
	commonSize float64
}

func defaultFontStats() fontStats {
	return fontStats{avgSize: 12, maxSize: 16, commonSize: 12}
}

// analyzeFontStats samples fragments from the first few pages and computes
// the average, maximum and most common font size.
func analyzeFontStats(frags []fragment.Fragment) fontStats {
	var sizes []float64
	for _, f := range frags {
		if f.Page > statsSamplePages {
			continue
		}
		if f.Text != "" {
			sizes = append(sizes, f.FontSize)
		}
	}
	if len(sizes) == 0 {
		return defaultFontStats()
	}

	var sum, max float64
	counts := make(map[float64]int)
	var order []float64
	for _, s := range sizes {
		sum += s
		if s > max {
			max = s
		}
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}

	// Mode, ties broken by first appearance in the stream.
	common := order[0]
	for _, s := range order {
		if counts[s] > counts[common] {
			common = s
		}
	}

	return fontStats{
		avgSize:    sum / float64(len(sizes)),
		maxSize:    max,
		commonSize: common,
	}
}

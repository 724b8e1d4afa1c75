package blockmerge

import "fmt"

// Markers are the begin and end lines framing a block.
type Markers struct {
	Begin string
	End   string
}

// HTMLMarkers returns comment markers for markdown files,
// e.g. "<!-- shnote rules start -->".
func HTMLMarkers(id string) Markers {
	return Markers{
		Begin: fmt.Sprintf("<!-- shnote %s start -->", id),
		End:   fmt.Sprintf("<!-- shnote %s end -->", id),
	}
}

// HashMarkers returns comment markers for YAML and shell-like files,
// e.g. "# >>> shnote config >>>".
func HashMarkers(id string) Markers {
	return Markers{
		Begin: fmt.Sprintf("# >>> shnote %s >>>", id),
		End:   fmt.Sprintf("# <<< shnote %s <<<", id),
	}
}

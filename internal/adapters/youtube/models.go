package youtube

// commentThreadList is the subset of a commentThreads list response we read
type commentThreadList struct {
	Items         []commentThread `json:"items"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

type commentThread struct {
	ID      string `json:"id"`
	Snippet struct {
		VideoID         string `json:"videoId"`
		TopLevelComment struct {
			Snippet struct {
				TextDisplay string `json:"textDisplay"`
			} `json:"snippet"`
		} `json:"topLevelComment"`
	} `json:"snippet"`
}

// googleError is the standard Google API error body
type googleError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Message string `json:"message"`
			Domain  string `json:"domain"`
			Reason  string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// reason returns the first error reason, if any
func (g googleError) reason() string {
	if len(g.Error.Errors) > 0 {
		return g.Error.Errors[0].Reason
	}
	return ""
}

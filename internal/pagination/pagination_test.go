package pagination

import "testing"

func TestPageRequest_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		in          PageRequest
		wantPage    int
		wantPerPage int
	}{
		{"empty", PageRequest{}, 1, 20},
		{"explicit", PageRequest{Page: 3, PerPage: 50}, 3, 50},
		{"clamped", PageRequest{Page: 1, PerPage: 1000}, 1, MaxPerPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Defaults(20)
			if p.Page != tt.wantPage || p.PerPage != tt.wantPerPage {
				t.Errorf("got page=%d per_page=%d, want %d/%d", p.Page, p.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[string](nil, 2, 20, 20)
	if resp.Data == nil || resp.Count != 0 {
		t.Errorf("nil data should become an empty slice: %+v", resp)
	}
	if !resp.HasMore {
		t.Error("a full upstream page may have a successor")
	}

	resp = NewPageResponse([]string{"a"}, 3, 20, 7)
	if resp.HasMore || resp.Count != 1 {
		t.Errorf("short page should be the last: %+v", resp)
	}
}

package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/symptomlex/internal/connectors/web"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/pacing"
)

func listingPage(names ...string) string {
	var sb strings.Builder
	sb.WriteString(`<html><body><div class="all-disease"><ul>`)
	for _, n := range names {
		fmt.Fprintf(&sb, "<li><a href=\"#\">%s</a></li>", n)
	}
	sb.WriteString(`</ul></div></body></html>`)
	return sb.String()
}

func newTestHarvester(t *testing.T, handler http.HandlerFunc, alphabet string) *Harvester {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := domain.DirectoryConfig{
		BaseURL:        ts.URL + "/disease-a-z/",
		Alphabet:       alphabet,
		ContainerClass: domain.DefaultContainerClass,
	}
	return NewHarvester(web.NewClient(domain.HTTPConfig{}), pacing.None{}, cfg)
}

func TestHarvest_CollectsAllLetters(t *testing.T) {
	pages := map[string]string{
		"/disease-a-z/a": listingPage("Asthma", "Anaemia"),
		"/disease-a-z/b": listingPage("Bronchitis", "Asthma"),
	}
	h := newTestHarvester(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pages[r.URL.Path])
	}, "ab")

	names, report := h.Harvest(context.Background())

	assert.Equal(t, []string{"Asthma", "Anaemia", "Bronchitis", "Asthma"}, names)
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, domain.StageHarvest, report.Stage)
	assert.Equal(t, 2, report.Count(domain.OutcomeSucceeded))
	assert.Equal(t, 2, report.Outcomes[0].Count)
}

func TestHarvest_FailedLetterDoesNotStopOthers(t *testing.T) {
	h := newTestHarvester(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/disease-a-z/b" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, listingPage(strings.ToUpper(r.URL.Path[len(r.URL.Path)-1:])+"-disease"))
	}, "abc")

	names, report := h.Harvest(context.Background())

	assert.Equal(t, []string{"A-disease", "C-disease"}, names)
	failed := report.Filter(domain.OutcomeFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Key)
	assert.ErrorIs(t, failed[0].Err, domain.ErrUnexpectedStatus)
}

func TestHarvest_MissingContainerContributesNothing(t *testing.T) {
	h := newTestHarvester(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><div class="maintenance">Back soon</div></body></html>`)
	}, "a")

	names, report := h.Harvest(context.Background())

	assert.Empty(t, names)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, domain.OutcomeSkipped, report.Outcomes[0].Status)
	assert.Equal(t, 0, report.Count(domain.OutcomeFailed))
}

type countingPacer struct {
	waits int
	err   error
}

func (p *countingPacer) Wait(context.Context) error {
	p.waits++
	return p.err
}

func TestHarvest_WaitsBeforeEveryRequest(t *testing.T) {
	var requests int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		fmt.Fprint(w, listingPage("X"))
	}))
	defer ts.Close()

	pacer := &countingPacer{}
	h := NewHarvester(web.NewClient(domain.HTTPConfig{}), pacer, domain.DirectoryConfig{
		BaseURL:        ts.URL + "/",
		Alphabet:       "xyz",
		ContainerClass: "all-disease",
	})

	h.Harvest(context.Background())

	assert.Equal(t, 3, pacer.waits)
	assert.Equal(t, 3, requests)
}

func TestHarvest_PacerErrorFailsLetter(t *testing.T) {
	pacer := &countingPacer{err: errors.New("stop")}
	h := NewHarvester(web.NewClient(domain.HTTPConfig{}), pacer, domain.DirectoryConfig{
		BaseURL:  "http://127.0.0.1:1/",
		Alphabet: "a",
	})

	names, report := h.Harvest(context.Background())

	assert.Empty(t, names)
	assert.Equal(t, 1, report.Count(domain.OutcomeFailed))
}

func TestPageURL(t *testing.T) {
	h := NewHarvester(nil, nil, domain.DirectoryConfig{BaseURL: domain.DefaultDirectoryBaseURL})
	assert.Equal(t, "https://www.nhp.gov.in/disease-a-z/q", h.PageURL("q"))
}

func TestParseListing(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		wantNames []string
		wantFound bool
	}{
		{
			name:      "trims and drops blank items",
			page:      `<div class="all-disease"><li>  Flu </li><li>   </li><li>Mumps</li></div>`,
			wantNames: []string{"Flu", "Mumps"},
			wantFound: true,
		},
		{
			name:      "container among other classes",
			page:      `<div class="col all-disease clearfix"><ul><li>Measles</li></ul></div>`,
			wantNames: []string{"Measles"},
			wantFound: true,
		},
		{
			name:      "empty container",
			page:      `<div class="all-disease"></div>`,
			wantFound: true,
		},
		{
			name: "no container",
			page: `<ul><li>Ignored</li></ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, found, err := ParseListing([]byte(tt.page), "all-disease")
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

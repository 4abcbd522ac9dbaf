package acceptance

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kpauljoseph/cardprint/pkg/models"
)

type GoldenLayout struct {
	Name    string       `json:"name"`
	Rows    int          `json:"rows"`
	Columns int          `json:"columns"`
	Pages   []GoldenPage `json:"pages"`
}

type GoldenPage struct {
	Sheet int        `json:"sheet"`
	Side  string     `json:"side"`
	Cells [][]string `json:"cells"`
}

// GoldenStore holds the expected layouts of the export fixtures. Setting
// UPDATE_TEST_DATA=true rewrites them from the current output.
type GoldenStore struct {
	path          string
	updateLayouts bool
	layouts       map[string]GoldenLayout // export filename -> layout
}

func NewGoldenStore(testDataPath string) *GoldenStore {
	return &GoldenStore{
		path:          filepath.Join(testDataPath, "expected_layouts.json"),
		updateLayouts: os.Getenv("UPDATE_TEST_DATA") == "true",
		layouts:       make(map[string]GoldenLayout),
	}
}

func (s *GoldenStore) Load() error {
	if s.updateLayouts {
		return nil // Don't load when updating
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read golden file: %w", err)
	}

	var layoutList []GoldenLayout
	if err := json.Unmarshal(data, &layoutList); err != nil {
		return fmt.Errorf("failed to parse golden file: %w", err)
	}

	for _, l := range layoutList {
		s.layouts[l.Name] = l
	}

	return nil
}

func (s *GoldenStore) Save() error {
	if !s.updateLayouts {
		return nil // Only save when updating
	}

	var layoutList []GoldenLayout
	for _, l := range s.layouts {
		layoutList = append(layoutList, l)
	}

	sort.Slice(layoutList, func(i, j int) bool {
		return layoutList[i].Name < layoutList[j].Name
	})

	data, err := json.MarshalIndent(layoutList, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layouts: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}

	return nil
}

func (s *GoldenStore) UpdateLayout(name string, opts models.PrintOptions, pages []models.Page) {
	if !s.updateLayouts {
		return
	}
	s.layouts[name] = ToGolden(name, opts, pages)
}

func (s *GoldenStore) GetLayout(name string) (GoldenLayout, bool) {
	l, exists := s.layouts[name]
	return l, exists
}

func (s *GoldenStore) IsUpdateMode() bool {
	return s.updateLayouts
}

func ToGolden(name string, opts models.PrintOptions, pages []models.Page) GoldenLayout {
	golden := GoldenLayout{
		Name:    name,
		Rows:    opts.Rows,
		Columns: opts.Columns,
	}
	for _, page := range pages {
		golden.Pages = append(golden.Pages, GoldenPage{
			Sheet: page.Sheet,
			Side:  string(page.Side),
			Cells: page.Cells,
		})
	}
	return golden
}

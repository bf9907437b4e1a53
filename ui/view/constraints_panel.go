package view

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/media-access-go/config"
	"github.com/soocke/media-access-go/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConstraintsPanel edits the audio/video capture request and persists it.
type ConstraintsPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	ApplyChanges()
}

type constraintsPanel struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	form    *model.ConstraintsForm
	onApply func(cfg *config.Config)

	texts  map[string]*TextWidget
	combos map[string]*TComboboxWidget
	choice map[string][]string
}

// NewConstraintsPanel creates the panel bound to cfg. onApply runs after a
// valid change was written back to cfg.
func NewConstraintsPanel(cfg *config.Config, cfgPath string, form *model.ConstraintsForm, logger *slog.Logger, onApply func(*config.Config)) ConstraintsPanel {
	return &constraintsPanel{
		cfg:     cfg,
		cfgPath: cfgPath,
		logger:  logger,
		form:    form,
		onApply: onApply,
		texts:   make(map[string]*TextWidget),
		combos:  make(map[string]*TComboboxWidget),
		choice:  make(map[string][]string),
	}
}

func (v *constraintsPanel) Build(startRow int) (row int) {
	row = startRow
	values := v.form.Values(v.cfg)
	col := 3 // panel sits right of the media surface
	for _, f := range v.form.Fields {
		lbl := Label(Txt(f.Label), Anchor("w"))
		Grid(lbl, Row(row), Column(col), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		if len(f.Choices) > 0 {
			shown := make([]string, len(f.Choices))
			for i, c := range f.Choices {
				shown[i] = c
				if c == "" {
					shown[i] = "<any>"
				}
			}
			cb := TCombobox(Values(shown), Width(16))
			Grid(cb, Row(row), Column(col+1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
			cb.Current(indexOf(f.Choices, values[f.ID]))
			v.combos[f.ID] = cb
			v.choice[f.ID] = f.Choices
		} else {
			w := Text(Height(1), Width(16))
			Grid(w, Row(row), Column(col+1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
			w.Delete("1.0", END)
			w.Insert("1.0", values[f.ID])
			v.texts[f.ID] = w
		}
		row++
	}
	apply := Button(Txt("Apply Constraints"), Command(func() { v.ApplyChanges() }))
	Grid(apply, Row(row), Column(col), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *constraintsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	values := make(map[string]string, len(v.texts)+len(v.combos))
	for id, w := range v.texts {
		values[id] = strings.Join(w.Get("1.0", END), "")
	}
	for id, cb := range v.combos {
		idx, err := strconv.Atoi(cb.Current(nil))
		choices := v.choice[id]
		if err != nil || idx < 0 || idx >= len(choices) {
			if v.logger != nil {
				v.logger.Error("constraints selection parse error", "field", id, "error", err)
			}
			continue
		}
		values[id] = choices[idx]
	}
	cfg, err := v.form.Apply(*v.cfg, values)
	if err != nil {
		if v.logger != nil {
			v.logger.Warn("constraints rejected", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
}

func indexOf(list []string, s string) int {
	for i, x := range list {
		if x == s {
			return i
		}
	}
	return 0
}

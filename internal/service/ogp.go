package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/sync/errgroup"

	"sakelien.dev/scenario-backend/internal/app/appconfig"
	"sakelien.dev/scenario-backend/internal/model"
)

const (
	ogpWidth  = 1200
	ogpHeight = 630
)

// OGP renders the social preview card for a scenario page.
type OGP struct {
	fontPath string

	ScenarioService *Scenario
	StageService    *Stage
	WeaponService   *Weapon

	fontOnce  sync.Once
	fontErr   error
	titleFace font.Face
	bodyFace  font.Face
	smallFace font.Face
}

func NewOGP(conf *appconfig.Config, scenarioService *Scenario, stageService *Stage, weaponService *Weapon) *OGP {
	return &OGP{
		fontPath:        conf.OGPFontPath,
		ScenarioService: scenarioService,
		StageService:    stageService,
		WeaponService:   weaponService,
	}
}

// Render produces a 1200x630 PNG card for the scenario behind code.
func (s *OGP) Render(ctx context.Context, code string) ([]byte, error) {
	scenario, err := s.ScenarioService.GetScenarioByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	var (
		stage      *model.Stage
		weaponsMap map[int]*model.Weapon
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		stage, err = s.StageService.GetStageByID(egCtx, scenario.StageID)
		return err
	})
	eg.Go(func() error {
		var err error
		weaponsMap, err = s.WeaponService.GetWeaponsMapByID(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := s.loadFonts(); err != nil {
		return nil, err
	}

	return s.draw(scenario, stage, weaponsMap)
}

func (s *OGP) draw(scenario *model.Scenario, stage *model.Stage, weaponsMap map[int]*model.Weapon) ([]byte, error) {
	dc := gg.NewContext(ogpWidth, ogpHeight)

	dc.SetHexColor("#14171f")
	dc.Clear()

	// accent bar along the top
	dc.SetHexColor("#ff5e00")
	dc.DrawRectangle(0, 0, ogpWidth, 14)
	dc.Fill()

	s.setFace(dc, s.titleFace)
	dc.SetHexColor("#f4f4f4")
	dc.DrawString(stage.Name, 72, 150)

	s.setFace(dc, s.bodyFace)
	dc.SetHexColor("#ffcf5e")
	dc.DrawString(fmt.Sprintf("Hazard Level %d%%", scenario.DangerRate), 72, 232)

	dc.SetHexColor("#f4b13d")
	dc.DrawString(fmt.Sprintf("Golden Eggs %d", scenario.TotalGoldenEggs), 72, 296)
	dc.SetHexColor("#d96b4a")
	dc.DrawString(fmt.Sprintf("Power Eggs %d", scenario.TotalPowerEggs), 460, 296)

	dc.SetHexColor("#c9ccd4")
	dc.DrawString(weaponLine(scenario.Weapons, weaponsMap), 72, 372)

	s.drawTags(dc, s.ScenarioService.GetScenarioTags(scenario))

	s.setFace(dc, s.smallFace)
	dc.SetHexColor("#7a7f8c")
	dc.DrawString(scenario.Code, 72, ogpHeight-48)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to encode preview card")
	}
	return buf.Bytes(), nil
}

func (s *OGP) drawTags(dc *gg.Context, tags []string) {
	s.setFace(dc, s.smallFace)
	x := 72.0
	y := 440.0
	for _, tag := range tags {
		w, h := dc.MeasureString(tag)
		if x+w+40 > ogpWidth-72 {
			x = 72.0
			y += h + 36
		}
		dc.SetHexColor("#2a2f3d")
		dc.DrawRoundedRectangle(x, y-h-10, w+32, h+24, 10)
		dc.Fill()
		dc.SetHexColor("#9fd356")
		dc.DrawString(tag, x+16, y)
		x += w + 48
	}
}

func weaponLine(weapons []*model.ScenarioWeapon, weaponsMap map[int]*model.Weapon) string {
	if len(weapons) == 0 {
		return "No weapon data"
	}
	names := make([]string, 0, len(weapons))
	for _, w := range weapons {
		switch {
		case w.Weapon != nil:
			names = append(names, w.Weapon.Name)
		case weaponsMap[w.WeaponID] != nil:
			names = append(names, weaponsMap[w.WeaponID].Name)
		}
	}
	return strings.Join(names, " / ")
}

func (s *OGP) setFace(dc *gg.Context, face font.Face) {
	if face != nil {
		dc.SetFontFace(face)
	}
}

// loadFonts parses the configured TTF once and derives the three sizes the
// card uses. With no font configured the context's built-in bitmap face is
// kept, which keeps local development working without assets.
func (s *OGP) loadFonts() error {
	if s.fontPath == "" {
		return nil
	}
	s.fontOnce.Do(func() {
		fontBytes, err := os.ReadFile(s.fontPath)
		if err != nil {
			s.fontErr = errors.Wrap(err, "failed to read card font")
			return
		}
		parsed, err := truetype.Parse(fontBytes)
		if err != nil {
			s.fontErr = errors.Wrap(err, "failed to parse card font")
			return
		}
		s.titleFace = newFace(parsed, 72)
		s.bodyFace = newFace(parsed, 40)
		s.smallFace = newFace(parsed, 28)
	})
	return s.fontErr
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Command bubblesim previews the bubble layout offline. Tokens come from a
// saved pools response or are generated at random.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/suibubbles/api"
	"github.com/milk9111/suibubbles/config"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/system"
	"github.com/milk9111/suibubbles/script"
	"github.com/milk9111/suibubbles/session"
	"go.uber.org/zap"
)

type staticPools struct {
	resp *api.PoolsResponse
}

func (s staticPools) FetchPools(context.Context, api.Query) (*api.PoolsResponse, error) {
	return s.resp, nil
}

type demoGame struct {
	width, height int

	world     *ecs.World
	scheduler *ecs.Scheduler
	session   *session.Session
}

func (g *demoGame) Update() error {
	g.scheduler.Update(g.world)
	g.session.Update()
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x0a, 0x0e, 0x18, 0xff})
	g.scheduler.Draw(g.world, screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("bubbles: %d    TPS: %.2f", len(ecs.Entities(g.world)), ebiten.ActualTPS()))
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func loadTokens(path string, n int, r *rand.Rand) (*api.PoolsResponse, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var resp api.PoolsResponse
		if err := json.Unmarshal(b, &resp); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return &resp, nil
	}

	resp := &api.PoolsResponse{Total: n}
	for i := 0; i < n; i++ {
		sym := fmt.Sprintf("T%02d", i)
		resp.Data = append(resp.Data, api.Token{
			Address:      fmt.Sprintf("0x%x::%s::%s", i+1, sym, sym),
			Symbol:       sym,
			Metadata:     api.TokenMetadata{Name: "Token " + sym, Symbol: sym},
			MarketCapSUI: 1000 + r.Float64()*99000,
			PriceSUI:     r.Float64(),
		})
	}
	return resp, nil
}

// hashChanges derives a stable change in [-20, 20) from the address.
type hashChanges struct{}

func (hashChanges) Change(_ context.Context, t api.Token, _ api.Period) (float64, error) {
	var h uint32
	for _, ch := range t.Address {
		h = h*31 + uint32(ch)
	}
	return float64(h%4000)/100 - 20, nil
}

func main() {
	n := flag.Int("n", 20, "number of synthetic tokens")
	width := flag.Int("w", 800, "container width")
	height := flag.Int("h", 600, "container height")
	seed := flag.Uint64("seed", 1, "random seed")
	tokens := flag.String("tokens", "", "pools response JSON to load instead of random tokens")
	sizeScript := flag.String("script", "", "tengo size script")
	flag.Parse()

	cfg := config.DefaultConfig()
	cfg.Bubbles.Count = *n

	r := rand.New(rand.NewPCG(*seed, *seed))
	resp, err := loadTokens(*tokens, *n, r)
	if err != nil {
		log.Fatal(err)
	}
	sizer, err := script.Load(*sizeScript)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}

	world := ecs.NewWorld()
	drag := &system.DragState{}
	frame := time.Second / time.Duration(ebiten.TPS())

	sess := session.New(world, drag, session.Deps{
		Pools:   staticPools{resp: resp},
		Changes: hashChanges{},
		Sizer:   sizer,
		Logger:  logger,
		Rand:    r,
	}, session.OptionsFromConfig(cfg))
	defer sess.Close()
	sess.SetBounds(float64(*width), float64(*height))
	sess.Refresh()

	g := &demoGame{
		width:   *width,
		height:  *height,
		world:   world,
		session: sess,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(cp.Vector{}),
			system.NewDragSystem(drag, cfg.Layout.DragDamping, cfg.Layout.ClickSlop),
			system.NewLayoutSystem(system.DefaultLayoutParams(), frame, drag),
			system.NewHoverSystem(drag),
			system.NewRenderSystem(cp.Vector{}, nil),
		),
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Bubble Layout Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/rnd/config"
	"github.com/OpticalFlyer/rnd/log"
	"github.com/OpticalFlyer/rnd/scene"
	"github.com/OpticalFlyer/rnd/ui"
)

// Rnd implements ebiten.Game interface.
type Rnd struct {
	ui        *ui.Controller
	pointer   ui.PointerReader
	scene     *scene.Scene
	debugMode bool
	free      bool
}

func (g *Rnd) Update() error {
	g.ui.Update(g.pointer.Read())

	if !g.ui.IsInteractingWithUI() && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	if !g.ui.IsInteractingWithUI() && inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.free = !g.free
		g.scene.SetFree(g.free)
	}
	return nil
}

func (g *Rnd) Draw(screen *ebiten.Image) {
	g.ui.Draw(screen)
	if g.debugMode {
		g.ui.ShowDebugInfo(screen)
	}
}

func (g *Rnd) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

var (
	configFlag string
	debugFlag  bool
	boundsFlag string

	rootCmd = &cobra.Command{
		Use:           "rnd",
		Short:         "rnd - drag and resize regions inside their containers",
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(nil)
			log.InitDebug(debugFlag)
			defer log.CloseDebug()

			cfg, err := config.LoadOrDefault(configFlag)
			if err != nil {
				return err
			}
			s, err := scene.Build(cfg, boundsFlag)
			if err != nil {
				return fmt.Errorf("failed to build scene: %w", err)
			}
			s.OnSettle = func(r *scene.Region) {
				pos, size := r.Position(), r.Size()
				log.InfoLog.Printf("%s at %.0f,%.0f size %.0fx%.0f", r.Name(), pos.X, pos.Y, size.Width, size.Height)
			}

			app := &Rnd{ui: ui.NewController(s), scene: s, debugMode: debugFlag}

			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetWindowTitle(cfg.Window.Title)
			ebiten.SetVsyncEnabled(true)

			if err := ebiten.RunGame(app); err != nil {
				log.ErrorLog.Printf("game loop stopped: %v", err)
				return err
			}
			return nil
		},
	}

	checkCmd = &cobra.Command{
		Use:   "check [scene.yaml]",
		Short: "Validate a scene file and list its regions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(nil)
			path := configFlag
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := config.LoadOrDefault(path)
			if err != nil {
				return err
			}
			s, err := scene.Build(cfg, boundsFlag)
			if err != nil {
				return err
			}
			for _, r := range s.Regions() {
				rect := r.ScreenRect()
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s in %-12s bounds %-10s at %.0f,%.0f %.0fx%.0f\n",
					r.Name(), r.Box().Name(), r.Coordinator().Config().Bounds,
					rect.X, rect.Y, rect.Width, rect.Height)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Scene file to load. The built-in demo scene is used when empty.")
	rootCmd.PersistentFlags().StringVar(&boundsFlag, "bounds", "",
		"Override every region's boundary ('parent', '#name' or 'none')")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false,
		"Write debug logs and start with the debug overlay shown")

	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.ErrorLog.Print(err)
		os.Exit(1)
	}
}

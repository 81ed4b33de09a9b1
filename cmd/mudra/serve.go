package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/interact"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interaction service",
	Long: `Start the HTTP server with the WebSocket session transport. With
--camera, also run the local camera pipeline; with --tray, add a system
tray toggle for interaction processing.`,
	Run: runServe,
}

var serveFlags struct {
	addr         string
	dbPath       string
	staticDir    string
	camera       bool
	cameraID     int
	motionThresh float64
	useTray      bool
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveFlags.dbPath, "db", "", "database path (default ~/.mudra/mudra.db)")
	serveCmd.Flags().StringVar(&serveFlags.staticDir, "static", "", "web client directory (default auto-detect)")
	serveCmd.Flags().BoolVar(&serveFlags.camera, "camera", false, "run the local camera pipeline")
	serveCmd.Flags().IntVar(&serveFlags.cameraID, "camera-id", 0, "capture device ID")
	serveCmd.Flags().Float64Var(&serveFlags.motionThresh, "motion-threshold", 1.0, "motion threshold in percent of changed pixels")
	serveCmd.Flags().BoolVar(&serveFlags.useTray, "tray", false, "show the system tray toggle")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	dbPath := serveFlags.dbPath
	if dbPath == "" {
		var err error
		dbPath, err = defaultDBPath()
		if err != nil {
			log.Fatalf("Failed to resolve database path: %v", err)
		}
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	staticDir := serveFlags.staticDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving web client from: %s\n", staticDir)
	}

	srv := server.New(server.Config{
		StaticDir: staticDir,
		Store:     st,
	})

	var tr *tray.Tray
	var a *app.App
	if serveFlags.camera {
		a = app.New(app.Config{
			Store:        st,
			CameraID:     serveFlags.cameraID,
			MotionThresh: serveFlags.motionThresh,
			Handlers: []interact.Handler{
				func(ev interact.Event) {
					if tr != nil {
						tr.SetLastEvent(a.LastEvent())
					}
				},
			},
		})
		if err := a.Start(); err != nil {
			log.Fatalf("Failed to start camera pipeline: %v", err)
		}
		a.SetEnabled(true)
		defer a.Stop()
	}

	if !serveFlags.useTray {
		fmt.Printf("Starting server on %s\n", serveFlags.addr)
		if err := srv.ListenAndServe(serveFlags.addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	// The tray owns the main thread; the server runs alongside it.
	go func() {
		fmt.Printf("Starting server on %s\n", serveFlags.addr)
		if err := srv.ListenAndServe(serveFlags.addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	tr = tray.New()
	tr.OnToggle(func(enabled bool) {
		if a != nil {
			a.SetEnabled(enabled)
		}
	})
	tr.OnQuit(func() {
		if a != nil {
			a.Stop()
		}
	})
	tr.Run()
}

package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ayusman/mudra/internal/store"
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Print the events recorded under a session",
	Long: `Print the pointer events recorded under a session, in order.
Without a session ID, list the recorded sessions instead.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

var replayFlags struct {
	dbPath string
}

func init() {
	replayCmd.Flags().StringVar(&replayFlags.dbPath, "db", "", "database path (default ~/.mudra/mudra.db)")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) {
	dbPath := replayFlags.dbPath
	if dbPath == "" {
		var err error
		dbPath, err = defaultDBPath()
		if err != nil {
			log.Fatalf("Failed to resolve database path: %v", err)
		}
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	if len(args) == 0 {
		listSessions(st)
		return
	}
	printEvents(st, args[0])
}

func listSessions(st *store.Store) {
	sessions, err := st.Sessions().List()
	if err != nil {
		log.Fatalf("Failed to list sessions: %v", err)
	}
	if len(sessions) == 0 {
		fmt.Println("No recorded sessions.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tSTARTED\tEVENTS")
	for _, s := range sessions {
		n, _ := st.Events().CountBySession(s.ID)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			s.ID, s.Source, s.StartedAt.Format("2006-01-02 15:04:05"), n)
	}
	w.Flush()
}

func printEvents(st *store.Store, sessionID string) {
	if _, err := st.Sessions().GetByID(sessionID); err != nil {
		log.Fatalf("Failed to load session %s: %v", sessionID, err)
	}

	events, err := st.Events().ListBySession(sessionID)
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}

	for _, e := range events {
		line := fmt.Sprintf("%s  %-13s", e.OccurredAt.Format("15:04:05.000"), e.Kind)
		if e.Hand != "" {
			line += fmt.Sprintf(" %-5s", e.Hand)
		}
		if e.TargetID != "" {
			line += fmt.Sprintf(" target=%s(%s)", e.TargetID, e.TargetKind)
		}
		if e.ScreenX != nil {
			line += fmt.Sprintf(" at=(%.1f, %.1f)", *e.ScreenX, *e.ScreenY)
		}
		if tr := e.Transform(); tr != nil {
			line += fmt.Sprintf(" view=scale %.2f offset (%.1f, %.1f)", tr.Scale, tr.X, tr.Y)
		}
		fmt.Println(line)
	}
	fmt.Printf("%d events\n", len(events))
}

// Package main implements the daysignal CLI.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/JoquimMarques/DaySignal/internal/clock"
	"github.com/JoquimMarques/DaySignal/internal/config"
	"github.com/JoquimMarques/DaySignal/internal/model"
	"github.com/JoquimMarques/DaySignal/internal/reminder"
	"github.com/JoquimMarques/DaySignal/internal/storage"
	"github.com/JoquimMarques/DaySignal/internal/tracker"
	"github.com/JoquimMarques/DaySignal/internal/update"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("daysignal: ")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "daysignal",
	Short:        "Track the day's tasks and goals from the terminal",
	SilenceUsage: true,
	RunE:         runTUI,
}

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a task for today (or tomorrow with --tomorrow)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var goalCmd = &cobra.Command{
	Use:   "goal <text>...",
	Short: "Add a daily goal for today",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGoal,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the day's completion stats",
	RunE:  runStats,
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Exercise the desktop notification path",
	RunE:  runNotify,
}

var (
	addTomorrow bool
	statsDate   string
	notifyTest  bool
)

func init() {
	addCmd.Flags().BoolVar(&addTomorrow, "tomorrow", false, "schedule the task for tomorrow")
	statsCmd.Flags().StringVar(&statsDate, "date", "", "day to report, YYYY-MM-DD (default today)")
	notifyCmd.Flags().BoolVar(&notifyTest, "test", false, "send a test notification")

	rootCmd.AddCommand(addCmd, goalCmd, statsCmd, notifyCmd)
}

func openStore() (*storage.SQLiteKV, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	if dir := filepath.Dir(cfg.DataPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, config.Config{}, fmt.Errorf("create data directory: %w", err)
		}
	}
	kv, err := storage.OpenSQLite(cfg.DataPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	return kv, cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	kv, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	clk := clock.System{}
	tr := tracker.New(kv, clk)
	policy := reminder.NewPolicy(kv, cfg.PendingThreshold)

	var notifier reminder.Notifier = reminder.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = reminder.ExecNotifier{}
	}

	m := update.NewModelWithConfig(tr, policy, kv, clk, notifier, cfg)
	program := tea.NewProgram(m)

	sched := reminder.NewScheduler(time.Local)
	if _, err := sched.ScheduleInterval(cfg.ReminderInterval, func() {
		program.Send(update.ReminderCheckMsg{})
	}); err != nil {
		return err
	}
	if _, err := sched.ScheduleDaily("00:00", func() {
		program.Send(update.DayRolloverMsg{})
	}); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	kv, _, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	tr := tracker.New(kv, clock.System{})
	selector := model.SelectToday
	if addTomorrow {
		selector = model.SelectTomorrow
	}
	task, err := tr.CreateTask(strings.Join(args, " "), selector)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("task text is empty or over %d characters", model.MaxTaskTextLen)
	}
	fmt.Printf("added %q for %s\n", task.Text, task.Date)
	return nil
}

func runGoal(cmd *cobra.Command, args []string) error {
	kv, _, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	tr := tracker.New(kv, clock.System{})
	goal, err := tr.CreateGoal(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if goal == nil {
		return fmt.Errorf("goal text is empty")
	}
	fmt.Printf("added goal %q for %s\n", goal.Text, goal.Date)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	kv, _, err := openStore()
	if err != nil {
		return err
	}
	defer kv.Close()

	clk := clock.System{}
	tr := tracker.New(kv, clk)

	date := clk.Today()
	if statsDate != "" {
		date, err = model.ParseDate(statsDate)
		if err != nil {
			return fmt.Errorf("bad --date %q: %w", statsDate, err)
		}
	}
	stats := tr.DailyStats(date)
	fmt.Printf("%s: %d total, %d completed, %d failed, %d pending (%d%%)\n",
		date, stats.Total, stats.Completed, stats.Failed, stats.Pending, stats.Percent)
	return nil
}

func runNotify(cmd *cobra.Command, args []string) error {
	if !notifyTest {
		return fmt.Errorf("notify requires --test")
	}
	notifier := reminder.ExecNotifier{}
	if err := notifier.Send("daysignal", "test notification"); err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	fmt.Println("notification sent")
	return nil
}

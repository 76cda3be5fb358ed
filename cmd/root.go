package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosnake/director/random"
	"github.com/they4kman/gosnake/director/seeker"
	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/terminal"
)

var flagValues = struct {
	height, width int
	foodCount     int
	initialLength int
	seed          int64
	configPath    string
	snapshotPath  string
	director      string
	logFile       string
	logLevel      string
}{}

var rootCmd = &cobra.Command{
	Use:   "gosnake",
	Short: "Play snake in the terminal",
	Long: `gosnake is a terminal snake game. Steer with the arrow keys or
h/j/k/l, pause with space and quit with q.

Run with no arguments to play
	gosnake

Load settings from a YAML file
	gosnake --config snake.yaml

Let the computer play
	gosnake --director seeker
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logOutput, err := configureLogging(flagValues.logFile, flagValues.logLevel)
		if err != nil {
			return err
		}
		defer logOutput.Close()

		gameConfig, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		screen, err := terminal.NewScreen()
		if err != nil {
			return errors.Wrap(err, "opening terminal")
		}

		controller, err := game.NewController(gameConfig, screen)
		if err != nil {
			screen.Fini()
			return err
		}

		summary := controller.Run()
		screen.Fini()

		fmt.Printf("Score: %d, level: %d, length: %d (%s)\n", summary.Score, summary.Level, summary.Length, summary.Reason)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildConfig layers the config file, when given, over the defaults, then
// applies any flags set explicitly on the command line.
func buildConfig(cmd *cobra.Command) (game.GameConfig, error) {
	gameConfig := game.NewGameConfig()
	if flagValues.configPath != "" {
		var err error
		if gameConfig, err = game.LoadGameConfig(flagValues.configPath); err != nil {
			return gameConfig, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		gameConfig.Height = flagValues.height
	}
	if flags.Changed("width") {
		gameConfig.Width = flagValues.width
	}
	if flags.Changed("food") {
		gameConfig.FoodCount = flagValues.foodCount
	}
	if flags.Changed("length") {
		gameConfig.InitialLength = flagValues.initialLength
	}
	if flags.Changed("seed") {
		gameConfig.Seed = flagValues.seed
	}

	if flagValues.snapshotPath != "" {
		snapshot, err := game.LoadSnapshotFile(flagValues.snapshotPath)
		if err != nil {
			return gameConfig, err
		}
		gameConfig.Snapshot = snapshot
	}

	if gameConfig.Seed == 0 && (gameConfig.Snapshot == nil || gameConfig.Snapshot.Seed == 0) {
		gameConfig.Seed = time.Now().UnixNano()
	}

	if newDirector := directors[flagValues.director]; newDirector != nil {
		gameConfig.Director = newDirector()
	}

	return gameConfig, nil
}

// configureLogging sends logs to path, or discards them when path is empty;
// the terminal itself belongs to the game.
func configureLogging(path, level string) (io.Closer, error) {
	parsedLevel, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(parsedLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})

	if path == "" {
		log.SetOutput(ioutil.Discard)
		return ioutil.NopCloser(nil), nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}
	log.SetOutput(file)
	return file, nil
}

type directorValue string

var directors = map[string]func() game.Director{
	"none":   nil,
	"random": func() game.Director { return &random.Director{} },
	"seeker": func() game.Director { return &seeker.Director{} },
}

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (dirVal *directorValue) String() string {
	return string(*dirVal)
}

func (dirVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; isValid {
		*dirVal = directorValue(value)
		return nil
	} else {
		return fmt.Errorf("invalid director %q, expected one of: %s", value, directorNames())
	}
}

func (dirVal *directorValue) Type() string {
	return "director"
}

func directorNames() string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&flagValues.width, "width", "w", game.DefaultWidth, "Grid width; the border sits on columns 0 and width")
	rootCmd.Flags().IntVarP(&flagValues.height, "height", "h", game.DefaultHeight, "Grid height; the border sits on rows 0 and height")
	rootCmd.Flags().IntVarP(&flagValues.foodCount, "food", "f", game.DefaultFoodCount, "Number of food items on the grid")
	rootCmd.Flags().IntVarP(&flagValues.initialLength, "length", "l", game.DefaultInitialLength, "Initial length of the snake")
	rootCmd.Flags().Int64Var(&flagValues.seed, "seed", 0, "Random seed for food placement (0 picks one from the clock)")
	rootCmd.Flags().StringVarP(&flagValues.configPath, "config", "c", "", "YAML file to load game settings from")
	rootCmd.Flags().StringVarP(&flagValues.snapshotPath, "snapshot", "s", "", "YAML grid snapshot to start from")
	rootCmd.Flags().VarP(newDirectorValue("none", &flagValues.director), "director", "d", `Make the computer play.
random: turn at random, avoiding immediate death
seeker: chase the nearest food while keeping room to move`)
	rootCmd.Flags().StringVar(&flagValues.logFile, "log-file", "", "File to write logs to (logs are discarded when empty)")
	rootCmd.Flags().StringVar(&flagValues.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

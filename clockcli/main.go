package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/hebclock/hebtime"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'hebclock.cli'
func tracer() tracing.Trace {
	return tracing.Select("hebclock.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.hebclock.cli":  "Info",
		"trace.hebclock.time": "Error",
		"trace.hebclock.text": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	confFile := flag.String("conf", "", "YAML file with clock options")
	at := flag.String("at", "", "Print the phrase for HH:MM and exit")
	day := flag.Bool("day", false, "Print the phrases for every minute of a day and exit")
	isolate := flag.Bool("isolate", false, "Wrap phrases in directional isolates")
	optionFlags(flag.CommandLine)
	flag.Parse()
	if err := setTraceLevel(*tlevel); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	//
	// collect clock options from file and flags
	clockConf, err := loadConfig(*confFile)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	overrideFromFlags(flag.CommandLine, clockConf)
	intp := &Intp{
		opts:    hebtime.OptionsFromConfig(clockConf, confPrefix),
		isolate: *isolate,
	}
	tracer().Infof("clock options: %s", intp.opts)
	//
	// one-shot modes
	if *at != "" {
		if err := intp.printTime(*at); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
		return
	}
	if *day {
		if err := printDay(os.Stdout, intp.opts); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
		return
	}
	//
	// set up REPL
	pterm.Info.Println("Welcome to the Hebrew word clock") // colored welcome message
	repl, err := readline.New("שעה > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                              // go into interactive mode
}

func setTraceLevel(level string) error {
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("hebclock.time").SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	opts    hebtime.Options
	isolate bool
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	return fmt.Sprintf("( %s )", intp.opts)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(op)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

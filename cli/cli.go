package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"theo/theo"
	"theo/ui"
)

type (
	Args struct {
		Create  *CreateCmd  `arg:"subcommand:create" help:"crush every regular file of a directory into an archive"`
		Extract *ExtractCmd `arg:"subcommand:extract" help:"extract every file of an archive"`
		Get     *GetCmd     `arg:"subcommand:get" help:"extract one file of an archive by its id"`
		List    *ListCmd    `arg:"subcommand:list" help:"list the files of an archive"`
	}
	CreateCmd struct {
		Archive string `arg:"positional,required" help:"archive to create" placeholder:"OUTPUT"`
		Dir     string `arg:"env:THEO_DIR" default:"." help:"directory to crush" placeholder:"DIR"`
		Bar     bool   `help:"draw a progress bar instead of file names"`
	}
	ExtractCmd struct {
		Archive string `arg:"positional,required" help:"archive to extract" placeholder:"TARGET"`
		To      string `arg:"env:THEO_TO" default:"." help:"destination directory" placeholder:"DIR"`
		Bar     bool   `help:"draw a progress bar instead of file names"`
	}
	GetCmd struct {
		Archive string  `arg:"positional,required" help:"archive to extract from" placeholder:"TARGET"`
		ID      *uint32 `arg:"--id" help:"id of the file, asked for when missing" placeholder:"N"`
		To      string  `arg:"env:THEO_TO" default:"." help:"destination directory" placeholder:"DIR"`
	}
	ListCmd struct {
		Archive string `arg:"positional,required" help:"archive to list" placeholder:"TARGET"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Theo 1.0",
			"A mini file archiver.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (Args) Version() string {
	return "theo 1.0"
}

// ErrMissingEntry is reported when an archive holds no file with the
// requested id.
type ErrMissingEntry struct {
	ID uint32
}

func (r ErrMissingEntry) Error() string {
	return fmt.Sprintf("cannot find file with id %d", r.ID)
}

// Runner executes parsed commands. Prompt is asked for a file id when
// `get` is given none.
type Runner struct {
	Out    io.Writer
	Bar    io.Writer
	Prompt func(names []string) (uint32, error)
}

func (r Runner) Run(args Args) error {
	switch {
	case args.Create != nil:
		return r.create(*args.Create)
	case args.Extract != nil:
		return r.extract(*args.Extract)
	case args.Get != nil:
		return r.get(*args.Get)
	case args.List != nil:
		return r.list(*args.List)
	}
	return errors.New("no command given")
}

func (r Runner) create(cmd CreateCmd) error {
	sources, err := theo.Enumerate(cmd.Dir, cmd.Archive)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, "Archiving: ")
	observer, finish := r.observe(cmd.Bar, len(sources), "crushing")
	defer finish()
	return theo.Crush(cmd.Archive, sources, theo.WithObserver(observer))
}

func (r Runner) extract(cmd ExtractCmd) error {
	archive, err := theo.Open(cmd.Archive)
	if err != nil {
		return err
	}
	defer archive.Close()

	fmt.Fprintf(r.Out, "Archive contains %d files\n", archive.Stamp.FilesCount)
	fmt.Fprintln(r.Out, "Extracting: ")
	observer, finish := r.observe(cmd.Bar, int(archive.Stamp.FilesCount), "extracting")
	defer finish()
	return archive.ExtractAll(cmd.To, theo.WithObserver(observer))
}

func (r Runner) get(cmd GetCmd) error {
	id := uint32(0)
	if cmd.ID != nil {
		id = *cmd.ID
	} else {
		names, err := theo.ListNames(cmd.Archive)
		if err != nil {
			return err
		}
		id, err = r.Prompt(names)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(r.Out, "Extracting: ")
	observer, finish := r.observe(false, 1, "")
	defer finish()
	found, err := theo.ExtractOne(cmd.Archive, cmd.To, id, theo.WithObserver(observer))
	if err != nil {
		return err
	}
	if !found {
		return ErrMissingEntry{ID: id}
	}
	return nil
}

func (r Runner) list(cmd ListCmd) error {
	names, err := theo.ListNames(cmd.Archive)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(r.Out, name)
	}
	return nil
}

func Start() {
	log.SetFlags(0)
	log.SetPrefix(filepath.Base(os.Args[0]) + ": ")

	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stdout)
		return
	}

	runner := Runner{
		Out:    os.Stdout,
		Bar:    os.Stderr,
		Prompt: ui.PromptOrdinal,
	}
	if err := runner.Run(args); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

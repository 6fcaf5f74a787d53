package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/task-tracker/internal/adapter"
	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/models"
)

type App struct {
	adapter adapter.TaskTrackerAdapter
	out     io.Writer
	logger  *logger.Logger
}

type command struct {
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) (any, error)
}

func NewApp(adapter adapter.TaskTrackerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: adapter, out: out, logger: logger}
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"signup":   {usage: "-username U -password P [-email E] [-phone N]", run: a.signup},
		"login":    {usage: "-username U -password P", run: a.login},
		"me":       {usage: "", run: a.me},
		"create":   {usage: "[-title T] [-description D] [-status S] [-due DATE]", run: a.create},
		"list":     {usage: "[-status S] [-due DATE] [-limit N] [-offset N]", run: a.list},
		"get":      {usage: "-id ID", run: a.get},
		"update":   {usage: "-id ID [-title T] [-description D] [-status S] [-due DATE]", run: a.update},
		"complete": {usage: "-id ID [-status S]", run: a.complete},
		"delete":   {usage: "-id ID", run: a.delete},
	}
}

// Run dispatches args[0] and prints the result as JSON.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, ok := a.commands()[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(a.out)

	result, err := cmd.run(ctx, fs, args[1:])
	if err != nil {
		a.logger.Debug().Err(err).Str("command", args[0]).Msg("command failed")
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func (a *App) printUsage() {
	commands := a.commands()
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: task-tracker <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-9s %s\n", name, commands[name].usage)
	}
}

func (a *App) signup(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var request models.SignupRequest
	fs.StringVar(&request.Username, "username", "", "account name")
	fs.StringVar(&request.Password, "password", "", "account password")
	fs.StringVar(&request.Email, "email", "", "contact email")
	fs.StringVar(&request.PhoneNumber, "phone", "", "contact phone number")
	if err := parse(fs, args); err != nil {
		return nil, err
	}

	return a.adapter.Signup(ctx, request)
}

// login prints the token so it can be exported as TASK_TRACKER_TOKEN.
func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var request models.LoginRequest
	fs.StringVar(&request.Username, "username", "", "account name")
	fs.StringVar(&request.Password, "password", "", "account password")
	if err := parse(fs, args); err != nil {
		return nil, err
	}

	return a.adapter.Login(ctx, request)
}

func (a *App) me(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	return a.adapter.Me(ctx)
}

func (a *App) create(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	fields := taskFlags(fs)
	if err := parse(fs, args); err != nil {
		return nil, err
	}

	return a.adapter.CreateTask(ctx, fields.request(fs))
}

func (a *App) list(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var query models.TaskListQuery
	fs.StringVar(&query.Status, "status", "", "pending, in_progress or completed")
	fs.StringVar(&query.DueDate, "due", "", "YYYY-MM-DD or RFC 3339 date-time")
	fs.StringVar(&query.Limit, "limit", "", "maximum number of tasks")
	fs.StringVar(&query.Offset, "offset", "", "number of tasks to skip")
	if err := parse(fs, args); err != nil {
		return nil, err
	}

	return a.adapter.ListTasks(ctx, query)
}

func (a *App) get(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	id := fs.Int64("id", 0, "task id")
	if err := parseWithID(fs, args, id); err != nil {
		return nil, err
	}
	return a.adapter.GetTask(ctx, *id)
}

func (a *App) update(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	id := fs.Int64("id", 0, "task id")
	fields := taskFlags(fs)
	if err := parseWithID(fs, args, id); err != nil {
		return nil, err
	}

	return a.adapter.UpdateTask(ctx, *id, models.UpdateTaskRequest{TaskRequest: fields.request(fs)})
}

func (a *App) complete(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	id := fs.Int64("id", 0, "task id")
	status := fs.String("status", "", "status to set, completed when omitted")
	if err := parseWithID(fs, args, id); err != nil {
		return nil, err
	}

	var request models.StatusRequest
	if isSet(fs, "status") {
		request.Status = status
	}
	return a.adapter.CompleteTask(ctx, *id, request)
}

func (a *App) delete(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	id := fs.Int64("id", 0, "task id")
	if err := parseWithID(fs, args, id); err != nil {
		return nil, err
	}
	return a.adapter.DeleteTask(ctx, *id)
}

type taskFields struct {
	title, description, status, due *string
}

func taskFlags(fs *flag.FlagSet) taskFields {
	return taskFields{
		title:       fs.String("title", "", "task title"),
		description: fs.String("description", "", "task description"),
		status:      fs.String("status", "", "pending, in_progress or completed"),
		due:         fs.String("due", "", "YYYY-MM-DD or RFC 3339 date-time"),
	}
}

// request sends only the flags given on the command line.
func (f taskFields) request(fs *flag.FlagSet) models.TaskRequest {
	var request models.TaskRequest
	if isSet(fs, "title") {
		request.Title = f.title
	}
	if isSet(fs, "description") {
		request.Description = f.description
	}
	if isSet(fs, "status") {
		request.Status = f.status
	}
	if isSet(fs, "due") {
		request.DueDate = f.due
	}
	return request
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %s", ErrUsage, strings.Join(fs.Args(), " "))
	}
	return nil
}

func parseWithID(fs *flag.FlagSet, args []string, id *int64) error {
	if err := parse(fs, args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%w: -id must be a positive task id", ErrUsage)
	}
	return nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

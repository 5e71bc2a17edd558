package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "nightctl",
		Usage: "Operator tool for the match-night service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "http://localhost:8080",
				Usage: "base URL of the match-night server",
			},
		},
		Commands: []*cli.Command{
			itemStatusCmd,
			runPipelineCmd,
			materializeCmd,
			resetSessionCmd,
			deleteParticipantCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var itemStatusCmd = &cli.Command{
	Name:    "item-status",
	Usage:   "Transition an auction item (pending/active/finished)",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "item",
			Required: true,
			Usage:    "item ID to transition",
		},
		&cli.StringFlag{
			Name:     "status",
			Required: true,
			Usage:    "target status: pending, active or finished",
		},
	},
	Action: func(c *cli.Context) error {
		url := fmt.Sprintf("%s/admin/items/%s/status", c.String("addr"), c.String("item"))
		return call(http.MethodPut, url, map[string]string{"status": c.String("status")})
	},
}

var runPipelineCmd = &cli.Command{
	Name:    "run-pipeline",
	Usage:   "Run the match pipeline for a session",
	Aliases: []string{"p"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "session",
			Required: true,
			Usage:    "session ID to run the pipeline for",
		},
		&cli.StringFlag{
			Name:  "policy",
			Usage: "selection policy: live or final (server default when empty)",
		},
	},
	Action: func(c *cli.Context) error {
		url := fmt.Sprintf("%s/admin/sessions/%s/pipeline", c.String("addr"), c.String("session"))
		var body any
		if p := c.String("policy"); p != "" {
			body = map[string]string{"policy": p}
		}
		return call(http.MethodPost, url, body)
	},
}

var materializeCmd = &cli.Command{
	Name:    "materialize",
	Usage:   "Materialize report snapshots for a session",
	Aliases: []string{"m"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "session",
			Required: true,
			Usage:    "session ID to materialize reports for",
		},
	},
	Action: func(c *cli.Context) error {
		url := fmt.Sprintf("%s/admin/sessions/%s/snapshots", c.String("addr"), c.String("session"))
		return call(http.MethodPost, url, nil)
	},
}

var resetSessionCmd = &cli.Command{
	Name:  "reset-session",
	Usage: "Wipe all bids, likes, matches and reports for a session",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "session",
			Required: true,
			Usage:    "session ID to reset",
		},
	},
	Action: func(c *cli.Context) error {
		url := fmt.Sprintf("%s/admin/sessions/%s", c.String("addr"), c.String("session"))
		return call(http.MethodDelete, url, nil)
	},
}

var deleteParticipantCmd = &cli.Command{
	Name:  "delete-participant",
	Usage: "Remove a participant and everything referencing them",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "participant",
			Required: true,
			Usage:    "participant ID to delete",
		},
	},
	Action: func(c *cli.Context) error {
		url := fmt.Sprintf("%s/admin/participants/%s", c.String("addr"), c.String("participant"))
		return call(http.MethodDelete, url, nil)
	},
}

// call issues one request and prints the response body.
func call(method, url string, body any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	fmt.Println(string(raw))
	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}

// cmd/fieldterm — minimal field terminal for drivers/cashiers.
// Keeps a day-scoped session on disk (vehicle + position + date) and talks
// to the backend through the bearer-token API client.
//
// Usage:
//
//	fieldterm login -nik 123 -password secret
//	fieldterm session -vehicle B1234XYZ -position DRIVER
//	fieldterm pickup -store <uuid> -vehicle <uuid> -lines 500x20,1000x5
//	fieldterm status | logout | clear
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/client"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/session"
)

// termNavigator maps the browser navigation contract onto a terminal:
// the "current path" is the field app home, and a redirect just tells the
// user where to go next.
type termNavigator struct{ path string }

func (n *termNavigator) CurrentPath() string { return n.path }
func (n *termNavigator) Redirect(path string) {
	fmt.Fprintf(os.Stderr, "session expired — please log in again (%s)\n", path)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	home, _ := os.UserHomeDir()
	stateDir := filepath.Join(home, ".fieldterm")
	sess := session.New(session.NewFilePersistence(stateDir))

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	api := client.New(baseURL, sess, &termNavigator{path: "/app/home"})

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, api, sess, os.Args[2:])
	case "session":
		err = runSession(sess, os.Args[2:])
	case "pickup":
		err = runPickup(ctx, api, sess, os.Args[2:])
	case "status":
		err = runStatus(sess)
	case "logout":
		err = sess.Logout()
	case "clear":
		err = sess.ClearSession()
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: fieldterm <login|session|pickup|status|logout|clear> [flags]")
	os.Exit(2)
}

func runLogin(ctx context.Context, api *client.Client, sess *session.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	nik := fs.String("nik", "", "employee NIK")
	password := fs.String("password", "", "password")
	_ = fs.Parse(args)

	var resp dto.LoginResponse
	if err := api.Post(ctx, "/v1/auth/login", dto.LoginRequest{NIK: *nik, Password: *password}, &resp); err != nil {
		return err
	}
	if err := sess.Login(resp.User.NIK, resp.User.Name, resp.User.Role, resp.User.Position, resp.AccessToken); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", resp.User.Name, resp.User.Position)
	return nil
}

func runSession(sess *session.Store, args []string) error {
	fs := flag.NewFlagSet("session", flag.ExitOnError)
	vehicle := fs.String("vehicle", "", "vehicle plate for today")
	position := fs.String("position", "", "DRIVER or CASHIER")
	_ = fs.Parse(args)

	if *vehicle == "" || *position == "" {
		return fmt.Errorf("both -vehicle and -position are required")
	}
	if err := sess.SetSessionDetails(*vehicle, *position); err != nil {
		return err
	}
	fmt.Println("session set for today")
	return nil
}

func runPickup(ctx context.Context, api *client.Client, sess *session.Store, args []string) error {
	fs := flag.NewFlagSet("pickup", flag.ExitOnError)
	store := fs.String("store", "", "store id")
	vehicle := fs.String("vehicle", "", "vehicle id")
	lines := fs.String("lines", "", "comma-separated DENOMxQTY pairs, e.g. 500x20,1000x5")
	_ = fs.Parse(args)

	if !sess.HasValidSession() {
		return fmt.Errorf("no valid session for today — run 'fieldterm session' first")
	}

	req := dto.CreateTransactionRequest{StoreID: *store, VehicleID: *vehicle}
	for _, pair := range strings.Split(*lines, ",") {
		parts := strings.SplitN(pair, "x", 2)
		if len(parts) != 2 {
			return fmt.Errorf("bad line %q, expected DENOMxQTY", pair)
		}
		denom, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return fmt.Errorf("bad denomination in %q", pair)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return fmt.Errorf("bad quantity in %q", pair)
		}
		req.Lines = append(req.Lines, dto.TransactionLineRequest{Denomination: denom, Quantity: qty})
	}

	var resp dto.TransactionResponse
	if err := api.Post(ctx, "/v1/transactions", req, &resp); err != nil {
		return err
	}
	out, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Println(string(out))
	return nil
}

func runStatus(sess *session.Store) error {
	user := sess.User()
	if user == nil {
		fmt.Println("not logged in")
	} else {
		fmt.Printf("user: %s (%s, %s)\n", user.Name, user.Role, user.Position)
	}
	if sess.HasValidSession() {
		fmt.Printf("session: %s as %s (valid today)\n", sess.Vehicle(), sess.SelectedPosition())
	} else {
		fmt.Println("session: none for today")
	}
	return nil
}

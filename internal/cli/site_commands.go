package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"sitedesk/internal/api"
	"sitedesk/internal/config"
	"sitedesk/internal/dateutil"
	"sitedesk/internal/editor"
	"sitedesk/internal/format"
	"sitedesk/internal/report"
	"sitedesk/internal/session"
	"sitedesk/internal/xlsx"
)

func loginCommand(cfg *config.Config, logger *zap.Logger) *Command {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "Username (prompted when omitted)")
	password := fs.String("password", "", "Password (prompted when omitted)")

	return &Command{
		Name:        "login",
		Usage:       "sitedesk login [--username NAME] [--password PASS]",
		Description: "Authenticate and store a session",
		Flags:       fs,
		Run: func(cmd *Command, args []string) error {
			user := *username
			pass := *password
			reader := bufio.NewReader(os.Stdin)
			if user == "" {
				fmt.Print("Username: ")
				line, _ := reader.ReadString('\n')
				user = strings.TrimSpace(line)
			}
			if pass == "" {
				fmt.Print("Password: ")
				line, _ := reader.ReadString('\n')
				pass = strings.TrimSpace(line)
			}
			if user == "" || pass == "" {
				return fmt.Errorf("please enter both username and password")
			}

			ctx, cancel := opCtx(cfg)
			defer cancel()

			client := api.New(cfg.APIURL, nil, timeout(cfg), logger)
			sess, err := client.Login(ctx, user, pass)
			if err != nil {
				return err
			}
			if err := session.Save(cfg.SessionFile, sess); err != nil {
				return err
			}

			if !globalFlags.Quiet {
				fmt.Printf("Logged in as %s\n", sess.User.Username)
			}
			return nil
		},
	}
}

func logoutCommand(cfg *config.Config) *Command {
	return &Command{
		Name:        "logout",
		Usage:       "sitedesk logout",
		Description: "Clear the stored session",
		Run: func(cmd *Command, args []string) error {
			if err := session.Clear(cfg.SessionFile); err != nil {
				return err
			}
			if !globalFlags.Quiet {
				fmt.Println("Logged out.")
			}
			return nil
		},
	}
}

func searchCommand(cfg *config.Config, logger *zap.Logger) *Command {
	return &Command{
		Name:        "search",
		Usage:       "sitedesk search <term>",
		Description: "Search for sites by id fragment",
		Run: func(cmd *Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("usage: sitedesk search <term>")
			}

			client, err := authedClient(cfg, logger)
			if err != nil {
				return err
			}
			ctx, cancel := opCtx(cfg)
			defer cancel()

			sites, err := client.Search(ctx, strings.ToUpper(strings.Join(args, " ")))
			if err != nil {
				var nf *api.NotFoundError
				if errors.As(err, &nf) {
					fmt.Printf("No sites found: %s\n", nf.Message)
					return nil
				}
				return checkAuth(cfg, err)
			}

			if globalFlags.JSON {
				return printJSON(sites)
			}

			fmt.Printf("%-10s %-24s %-12s %-8s %s\n", "SITE", "STORE NAME", "REGION", "DIV", "STATUS")
			fmt.Println(strings.Repeat("-", 70))
			for _, s := range sites {
				fmt.Printf("%-10s %-24s %-12s %-8s %s\n",
					s.SiteID, clip(s.StoreName, 24), clip(s.Region, 12),
					clip(s.Division, 8), format.Text(s.Status))
			}
			return nil
		},
	}
}

func showCommand(cfg *config.Config, logger *zap.Logger) *Command {
	return &Command{
		Name:        "show",
		Usage:       "sitedesk show <site-id>",
		Description: "Show one site record",
		Run: func(cmd *Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("usage: sitedesk show <site-id>")
			}

			client, err := authedClient(cfg, logger)
			if err != nil {
				return err
			}
			ctx, cancel := opCtx(cfg)
			defer cancel()

			site, err := client.SearchSite(ctx, args[0])
			if err != nil {
				return checkAuth(cfg, err)
			}

			if globalFlags.JSON {
				return printJSON(site)
			}
			fmt.Print(renderSite(&site))
			return nil
		},
	}
}

func newCommand(cfg *config.Config, logger *zap.Logger) *Command {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	store := fs.String("store", "", "Store name")
	region := fs.String("region", "", "Region")
	div := fs.String("div", "", "Division")
	manager := fs.String("manager", "", "Manager")
	asstManager := fs.String("asst-manager", "", "Assistant manager")
	executive := fs.String("executive", "", "Executive")
	sqft := fs.String("sqft", "", "Floor area in square feet")
	doo := fs.String("doo", "", "Date of opening (DD-MM-YYYY)")
	agreementDate := fs.String("agreement-date", "", "Agreement date (DD-MM-YYYY)")
	leasePeriod := fs.Int("lease-period", 0, "Lease period in years")
	rentPositionDate := fs.String("rent-position-date", "", "Rent position date (DD-MM-YYYY)")
	rentEffectiveDate := fs.String("rent-effective-date", "", "Rent effective date (DD-MM-YYYY)")
	presentRent := fs.String("present-rent", "", "Present rent")
	rentDeposit := fs.String("rent-deposit", "", "Rent deposit")
	hike := fs.String("hike", "", "Hike percentage")
	owner := fs.String("owner", "", "Primary owner name")
	ownerMobile := fs.String("owner-mobile", "", "Owner mobile")
	gst := fs.String("gst", "", "GST number")
	pan := fs.String("pan", "", "PAN number")
	status := fs.String("status", "", "Status")
	remarks := fs.String("remarks", "", "Remarks")

	return &Command{
		Name:        "new",
		Usage:       "sitedesk new <site-id> [options]",
		Description: "Create a site record",
		Flags:       fs,
		Run: func(cmd *Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("usage: sitedesk new <site-id> [options]")
			}
			siteID := strings.ToUpper(args[0])

			payload := map[string]any{"site_id": siteID}
			setIf := func(key, value string) {
				if value != "" {
					payload[key] = value
				}
			}
			setIf("store_name", *store)
			setIf("region", *region)
			setIf("div", *div)
			setIf("manager", *manager)
			setIf("asst_manager", *asstManager)
			setIf("executive", *executive)
			setIf("sqft", *sqft)
			setIf("present_rent", *presentRent)
			setIf("rent_deposit", *rentDeposit)
			setIf("owner_name1", *owner)
			setIf("owner_mobile", *ownerMobile)
			setIf("gst_number", *gst)
			setIf("pan_number", *pan)
			setIf("status", *status)
			setIf("remarks", *remarks)
			if *hike != "" {
				n, err := strconv.ParseFloat(format.StripPercent(*hike), 64)
				if err != nil {
					return fmt.Errorf("invalid hike percentage %q", *hike)
				}
				payload["hike_percentage"] = n
			}

			for key, value := range map[string]*string{
				"doo":                 doo,
				"agreement_date":      agreementDate,
				"rent_position_date":  rentPositionDate,
				"rent_effective_date": rentEffectiveDate,
			} {
				if *value == "" {
					continue
				}
				wire, err := dateutil.Wire(dateutil.Display(*value))
				if err != nil {
					return fmt.Errorf("invalid date for %s: %q", key, *value)
				}
				payload[key] = wire
			}

			today := time.Now().Format(dateutil.WireLayout)
			payload["current_date"] = today
			if *leasePeriod > 0 {
				payload["lease_period"] = *leasePeriod
				if *agreementDate != "" {
					upto, err := dateutil.AddYears(*agreementDate, *leasePeriod)
					if err == nil {
						if wire, err := dateutil.Wire(upto); err == nil {
							payload["agreement_valid_upto"] = wire
						}
					}
				}
			}

			client, err := authedClient(cfg, logger)
			if err != nil {
				return err
			}
			ctx, cancel := opCtx(cfg)
			defer cancel()

			if err := client.CreateSite(ctx, payload); err != nil {
				return checkAuth(cfg, err)
			}

			if !globalFlags.Quiet {
				fmt.Printf("Created site %s\n", siteID)
			}
			return nil
		},
	}
}

func setCommand(cfg *config.Config, logger *zap.Logger) *Command {
	return &Command{
		Name:        "set",
		Usage:       "sitedesk set <site-id> field=value [field=value ...]",
		Description: "Edit fields of a site record",
		Run: func(cmd *Command, args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("usage: sitedesk set <site-id> field=value [field=value ...]")
			}

			client, err := authedClient(cfg, logger)
			if err != nil {
				return err
			}
			ctx, cancel := opCtx(cfg)
			defer cancel()

			site, err := client.SearchSite(ctx, args[0])
			if err != nil {
				return checkAuth(cfg, err)
			}

			sess, err := editor.Begin(site)
			if err != nil {
				return err
			}
			for _, pair := range args[1:] {
				name, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("expected field=value, got %q", pair)
				}
				if err := sess.Set(name, value); err != nil {
					return err
				}
			}
			sess.Recalculate()

			payload, err := sess.Payload()
			if err != nil {
				return err
			}
			if err := client.UpdateSite(ctx, sess.SiteID(), payload); err != nil {
				return checkAuth(cfg, err)
			}
			sess.Done()

			// Render from the server's copy, not the draft.
			updated, err := client.Site(ctx, sess.SiteID())
			if err != nil {
				return checkAuth(cfg, err)
			}
			if globalFlags.JSON {
				return printJSON(updated)
			}
			if !globalFlags.Quiet {
				fmt.Printf("Updated site %s\n", updated.SiteID)
			}
			return nil
		},
	}
}

func uploadCommand(cfg *config.Config, logger *zap.Logger) *Command {
	return &Command{
		Name:        "upload",
		Usage:       "sitedesk upload <file.xlsx>",
		Description: "Bulk-import sites from a spreadsheet",
		Run: func(cmd *Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("usage: sitedesk upload <file.xlsx>")
			}
			path := args[0]

			if err := xlsx.CheckName(path); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", path, err)
			}
			defer f.Close()

			summary, err := xlsx.Check(f)
			if err != nil {
				return fmt.Errorf("workbook rejected: %w", err)
			}
			if _, err := f.Seek(0, 0); err != nil {
				return err
			}

			client, err := authedClient(cfg, logger)
			if err != nil {
				return err
			}
			ctx, cancel := opCtx(cfg)
			defer cancel()

			msg, err := client.Upload(ctx, filepath.Base(path), f)
			if err != nil {
				return checkAuth(cfg, err)
			}

			if !globalFlags.Quiet {
				fmt.Printf("Uploaded %d rows from sheet %q: %s\n", summary.Rows, summary.Sheet, msg)
			}
			return nil
		},
	}
}

func reportCommand(cfg *config.Config, logger *zap.Logger) *Command {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	reportType := fs.String("type", report.TypeAllSites, "Report type")
	from := fs.String("from", "", "From date (DD-MM-YYYY)")
	to := fs.String("to", "", "To date (DD-MM-YYYY)")
	leasePeriod := fs.String("lease-period", "", "Lease period filter (lease period report only)")
	div := fs.String("div", "", "Division filter")
	status := fs.String("status", "", "Status filter")
	filter := fs.String("filter", "", "Keep only rows containing this text")
	csvPath := fs.String("csv", "", "Write the report to a CSV file")

	return &Command{
		Name:        "report",
		Usage:       "sitedesk report --from DATE --to DATE [options]",
		Description: "Generate a report, optionally exported to CSV",
		Flags:       fs,
		Run: func(cmd *Command, args []string) error {
			if *from == "" || *to == "" {
				return fmt.Errorf("please select both from and to dates")
			}
			if *reportType == report.TypeLeasePeriod && *leasePeriod == "" {
				return fmt.Errorf("please select a lease period")
			}

			fromWire, err := dateutil.Wire(dateutil.Display(*from))
			if err != nil {
				return fmt.Errorf("invalid from date %q", *from)
			}
			toWire, err := dateutil.Wire(dateutil.Display(*to))
			if err != nil {
				return fmt.Errorf("invalid to date %q", *to)
			}

			client, err := authedClient(cfg, logger)
			if err != nil {
				return err
			}
			ctx, cancel := opCtx(cfg)
			defer cancel()

			rows, err := client.Report(ctx, api.ReportQuery{
				Type:        *reportType,
				FromDate:    fromWire,
				ToDate:      toWire,
				LeasePeriod: *leasePeriod,
				Division:    *div,
				Status:      *status,
			})
			if err != nil {
				return checkAuth(cfg, err)
			}

			table := report.Build(rows).Filter(*filter)
			if table.Empty() {
				fmt.Println("No matching records.")
				return nil
			}

			if *csvPath != "" {
				out, err := os.Create(*csvPath)
				if err != nil {
					return err
				}
				defer out.Close()
				if err := table.WriteCSV(out); err != nil {
					return err
				}
				if !globalFlags.Quiet {
					fmt.Printf("Wrote %d rows to %s\n", len(table.Rows), *csvPath)
				}
				return nil
			}

			fmt.Print(renderTable(table))
			if !globalFlags.Quiet {
				fmt.Printf("%d rows\n", len(table.Rows))
			}
			return nil
		},
	}
}

func opCtx(cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*timeout(cfg))
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

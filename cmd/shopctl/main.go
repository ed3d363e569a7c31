// shopctl drives the Arun Cloth Shop client from the terminal: account
// session, cart, saved items, catalog browsing and a few admin writes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	adminapp "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/admin/app"
	adminrest "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/admin/infra/rest"
	cartapp "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/cart/app"
	cartdomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/cart/domain"
	cartrest "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/cart/infra/rest"
	catalogapp "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/app"
	catalogdomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/domain"
	catalogrest "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/infra/rest"
	sessionapp "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/app"
	sessiondomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/infra/localstore"
	sessionrest "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/infra/rest"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/pkg/config"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/pkg/logger"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/pkg/rest"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/pkg/shutdown"
)

type app struct {
	log     *slog.Logger
	session *sessionapp.Store
	cart    *cartapp.Store
	catalog *catalogapp.Store
	admin   *adminapp.Service
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "shopctl",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Format:  "text",
		Output:  os.Stderr,
	})

	storage, err := localstore.New(cfg.StateDir)
	if err != nil {
		log.Error("state dir unusable", slog.Any("err", err))
		os.Exit(1)
	}

	client := rest.New(cfg.APIBaseURL, rest.WithTimeout(cfg.HTTPTimeout), rest.WithLogger(log))
	a := &app{
		log:     log,
		session: sessionapp.NewStore(sessionrest.NewAuthAPI(client), storage, log, cfg.TokenRefreshInterval),
		catalog: catalogapp.NewStore(catalogrest.NewCatalogAPI(client), log),
	}
	a.cart = cartapp.NewStore(cartrest.NewCartAPI(client), a.session, log)
	a.admin = adminapp.NewService(adminrest.NewAdminAPI(client), a.session)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if b, ok := rest.BannerFor(err); ok && rest.KindOf(err) != rest.KindUnknown {
			fmt.Fprintln(os.Stderr, b.Message)
		}
		log.Error("command failed", slog.String("command", os.Args[1]), slog.Any("err", err))
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	// Every command except the session daemon starts from the persisted
	// session; the daemon binds the cart store first so the rehydration
	// transition triggers the initial cart load.
	switch command {
	case "login":
		a.session.Rehydrate()
		return a.login(ctx, args)
	case "logout":
		a.session.Rehydrate()
		a.session.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "register":
		return a.register(ctx, args)
	case "whoami":
		a.session.Rehydrate()
		return a.whoami()
	case "cart":
		a.session.Rehydrate()
		return a.cartCmd(ctx, args)
	case "saved":
		a.session.Rehydrate()
		return a.savedCmd(ctx, args)
	case "catalog":
		return a.catalogCmd(ctx, args)
	case "admin":
		a.session.Rehydrate()
		return a.adminCmd(ctx, args)
	case "daemon":
		return a.daemon(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		fs.PrintDefaults()
		return fmt.Errorf("email and password are required")
	}

	if err := a.session.Login(ctx, *email, *password); err != nil {
		return err
	}
	u := a.session.CurrentUser()
	fmt.Printf("logged in as %s (%s)\n", u.Username, u.Email)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	company := fs.String("company", "", "business name")
	phone := fs.String("phone", "", "contact phone")
	city := fs.String("city", "", "city")
	fs.Parse(args)
	if *email == "" || *username == "" || *password == "" {
		fs.PrintDefaults()
		return fmt.Errorf("email, username and password are required")
	}

	err := a.session.Register(ctx, sessiondomain.Registration{
		Email:       *email,
		Username:    *username,
		Password:    *password,
		CompanyName: *company,
		Phone:       *phone,
		City:        *city,
	})
	if err != nil {
		return err
	}
	fmt.Printf("account created for %s\n", *email)
	return nil
}

func (a *app) whoami() error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s <%s>\n", u.Username, u.Email)
	if u.CompanyName != "" {
		fmt.Printf("  company: %s (%s)\n", u.CompanyName, u.BusinessType)
	}
	if u.IsStaff {
		fmt.Println("  staff account")
	}
	return nil
}

func (a *app) cartCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := a.cart.LoadCart(ctx); err != nil {
			return err
		}
		printCart(a.cart.Cart())
		return nil
	case "add":
		fs := flag.NewFlagSet("cart add", flag.ExitOnError)
		slug := fs.String("product", "", "product slug")
		qty := fs.Int("qty", 0, "quantity in meters")
		colors := fs.String("colors", "", "preferred colors")
		note := fs.String("note", "", "special instructions")
		fs.Parse(args[1:])
		if *slug == "" || *qty <= 0 {
			fs.PrintDefaults()
			return fmt.Errorf("product and qty are required")
		}

		p, err := a.catalog.Product(ctx, *slug)
		if err != nil {
			return err
		}
		summary := cartdomain.ProductSummary{
			ID:               p.ID,
			Name:             p.Name,
			Slug:             p.Slug,
			StockQuantity:    p.StockQuantity,
			MinOrderQuantity: p.MinOrderQuantity,
		}
		opts := cartdomain.ItemOptions{PreferredColors: *colors, SpecialInstructions: *note}
		if err := a.cart.AddToCart(ctx, summary, *qty, opts); err != nil {
			return err
		}
		printCart(a.cart.Cart())
		return nil
	case "update":
		fs := flag.NewFlagSet("cart update", flag.ExitOnError)
		item := fs.String("item", "", "cart item id")
		qty := fs.Int("qty", 0, "new quantity")
		fs.Parse(args[1:])
		if *item == "" || *qty <= 0 {
			fs.PrintDefaults()
			return fmt.Errorf("item and qty are required")
		}
		if err := a.cart.LoadCart(ctx); err != nil {
			return err
		}
		if err := a.cart.UpdateCartItem(ctx, *item, *qty, cartdomain.ItemOptions{}); err != nil {
			return err
		}
		printCart(a.cart.Cart())
		return nil
	case "rm":
		fs := flag.NewFlagSet("cart rm", flag.ExitOnError)
		item := fs.String("item", "", "cart item id")
		fs.Parse(args[1:])
		if *item == "" {
			return fmt.Errorf("item is required")
		}
		if err := a.cart.RemoveFromCart(ctx, *item); err != nil {
			return err
		}
		printCart(a.cart.Cart())
		return nil
	case "clear":
		return a.cart.ClearCart(ctx)
	default:
		return fmt.Errorf("unknown cart subcommand %q", args[0])
	}
}

func (a *app) savedCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := a.cart.LoadSavedItems(ctx); err != nil {
			return err
		}
		for _, it := range a.cart.SavedItems() {
			fmt.Printf("%s  %s x%d\n", it.ID, it.Product.Name, it.Quantity)
		}
		return nil
	case "save":
		fs := flag.NewFlagSet("saved save", flag.ExitOnError)
		item := fs.String("item", "", "cart item id")
		fs.Parse(args[1:])
		if *item == "" {
			return fmt.Errorf("item is required")
		}
		return a.cart.SaveForLater(ctx, *item)
	case "restore":
		fs := flag.NewFlagSet("saved restore", flag.ExitOnError)
		item := fs.String("item", "", "saved item id")
		fs.Parse(args[1:])
		if *item == "" {
			return fmt.Errorf("item is required")
		}
		return a.cart.MoveToCart(ctx, *item)
	case "rm":
		fs := flag.NewFlagSet("saved rm", flag.ExitOnError)
		item := fs.String("item", "", "saved item id")
		fs.Parse(args[1:])
		if *item == "" {
			return fmt.Errorf("item is required")
		}
		return a.cart.RemoveSavedItem(ctx, *item)
	default:
		return fmt.Errorf("unknown saved subcommand %q", args[0])
	}
}

func (a *app) catalogCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"featured"}
	}
	switch args[0] {
	case "featured":
		if err := a.catalog.LoadFeatured(ctx); err != nil {
			return err
		}
		printProducts(a.catalog.Featured())
		return nil
	case "latest":
		if err := a.catalog.LoadLatest(ctx); err != nil {
			return err
		}
		printProducts(a.catalog.Latest())
		return nil
	case "categories":
		if err := a.catalog.LoadCategories(ctx); err != nil {
			return err
		}
		for _, c := range a.catalog.Categories() {
			fmt.Printf("%-24s %d products\n", c.Name, c.ProductCount)
		}
		return nil
	case "refresh":
		if err := a.catalog.RefreshAll(ctx); err != nil {
			return err
		}
		fmt.Println("catalog refreshed")
		return nil
	default:
		return fmt.Errorf("unknown catalog subcommand %q", args[0])
	}
}

func (a *app) adminCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("admin subcommand required")
	}
	switch args[0] {
	case "add-product":
		fs := flag.NewFlagSet("admin add-product", flag.ExitOnError)
		name := fs.String("name", "", "product name")
		category := fs.String("category", "", "category slug")
		material := fs.String("material", "", "fabric material")
		price := fs.Float64("price", 0, "price per meter")
		stock := fs.Int("stock", 0, "stock in meters")
		fs.Parse(args[1:])

		p, err := a.admin.CreateProduct(ctx, adminapp.ProductInput{
			Name:          *name,
			Category:      *category,
			Material:      *material,
			PricePerMeter: *price,
			StockQuantity: *stock,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created product %s (%s)\n", p.Name, p.ID)
		return nil
	case "rm-product":
		fs := flag.NewFlagSet("admin rm-product", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		fs.Parse(args[1:])
		if *id == "" {
			return fmt.Errorf("id is required")
		}
		return a.admin.DeleteProduct(ctx, *id)
	case "users":
		fs := flag.NewFlagSet("admin users", flag.ExitOnError)
		page := fs.Int("page", 1, "page")
		fs.Parse(args[1:])
		users, err := a.admin.ListUsers(ctx, *page)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%s  %s <%s>\n", u.ID, u.Username, u.Email)
		}
		return nil
	default:
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}

// daemon keeps the session alive: cart store bound to auth transitions, the
// token refresh loop running, until interrupted.
func (a *app) daemon(ctx context.Context) error {
	a.cart.Bind(ctx)
	a.session.Rehydrate()
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("no persisted session; run shopctl login first")
	}
	a.session.StartRefresh(ctx)
	go func() {
		if err := a.catalog.RefreshAll(ctx); err != nil {
			a.log.Warn("catalog warmup incomplete", slog.Any("err", err))
		}
	}()
	a.log.Info("session daemon running")

	<-ctx.Done()
	a.log.Info("bye")
	return nil
}

func printCart(c *cartdomain.Cart) {
	if c == nil || len(c.Items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, it := range c.Items {
		fmt.Printf("%s  %s x%d  %.2f\n", it.ID, it.Product.Name, it.Quantity, it.TotalPrice)
	}
	fmt.Printf("total: %d items, %.2f\n", c.TotalItems, c.TotalAmount)
}

func printProducts(ps []catalogdomain.Product) {
	if len(ps) == 0 {
		fmt.Println("no products")
		return
	}
	for _, p := range ps {
		price := "price hidden"
		if p.CanSeePrices {
			price = fmt.Sprintf("%.2f/m", p.PricePerMeter)
		}
		fmt.Printf("%-32s %-10s %4d gsm  %s\n", p.Name, p.Material, p.GSM, price)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: shopctl <command> [flags]

commands:
  login       -email -password
  logout
  register    -email -username -password [-company -phone -city]
  whoami
  cart        list | add | update | rm | clear
  saved       list | save | restore | rm
  catalog     featured | latest | categories | refresh
  admin       add-product | rm-product | users
  daemon      keep the session refreshed until interrupted`)
}

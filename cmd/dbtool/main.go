// dbtool is the one-off database administration utility: seeding,
// index creation, order cleanup and collection stats.
//
// Usage:
//
//	dbtool init [-yes]   reseed products from the JSON file and create indexes
//	dbtool reset-orders  delete all orders
//	dbtool stats         show collection counts
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaar-baba/backend/internal/catalog"
	"github.com/bazaar-baba/backend/internal/config"
	"github.com/bazaar-baba/backend/internal/orders"
	"github.com/bazaar-baba/backend/internal/seed"
	"github.com/bazaar-baba/backend/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	yes := fs.Bool("yes", false, "wipe existing products without asking")
	_ = fs.Parse(os.Args[2:])

	cfg := config.Load()
	logger := log.WithField("component", "dbtool")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := storage.Connect(ctx, cfg.MongoURI, cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to mongodb")
	}
	defer db.Close(context.Background())

	switch command {
	case "init":
		err = initDatabase(ctx, db, cfg, *yes)
	case "reset-orders":
		err = resetOrders(ctx, db)
	case "stats":
		err = showStats(ctx, db)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.WithError(err).Fatal(command + " failed")
	}
}

func initDatabase(ctx context.Context, db *storage.Mongo, cfg config.Config, wipe bool) error {
	logger := log.WithField("component", "dbtool")
	store := catalog.NewStore(db)

	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		if !wipe {
			return fmt.Errorf("%d products already exist; re-run with -yes to delete and re-seed", n)
		}
		deleted, err := db.DeleteMany(ctx, storage.ProductsCollection, bson.M{})
		if err != nil {
			return err
		}
		logger.WithField("deleted", deleted).Info("removed existing products")
	}

	docs, err := seed.LoadFile(cfg.ProductsFile)
	if err != nil {
		return err
	}
	count, err := store.BulkInsert(ctx, docs)
	if err != nil {
		return err
	}
	logger.WithField("count", count).Info("inserted products")

	if err := storage.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	logger.Info("created indexes")
	return nil
}

func resetOrders(ctx context.Context, db *storage.Mongo) error {
	deleted, err := db.DeleteMany(ctx, storage.OrdersCollection, bson.M{})
	if err != nil {
		return err
	}
	log.WithField("deleted", deleted).Info("removed orders")
	return nil
}

func showStats(ctx context.Context, db *storage.Mongo) error {
	products, err := catalog.NewStore(db).Count(ctx)
	if err != nil {
		return err
	}
	orderCount, err := orders.NewStore(db).Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("products: %d\norders:   %d\n", products, orderCount)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dbtool <init [-yes] | reset-orders | stats>")
}

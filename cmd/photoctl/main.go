// photoctl is a thin command-line client for the phototeka server.
//
// Usage:
//
//	photoctl <command> [flags]
//
// Commands:
//
//	register   create an account and print the issued token pair
//	login      authenticate and print the issued token pair
//	albums     list the caller's albums
//	album-new  create an album
//	tags       list the shared tag catalog
//	tag-new    add a tag to the catalog
//	photos     list the caller's photos (optionally per album)
//	upload     upload an image with its metadata
//	search     find photos by tag names across the whole catalog
//	version    print client and server versions
//
// The server address and access token come from the PHOTOCTL_ADDRESS and
// PHOTOCTL_TOKEN environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/avolkhin/phototeka/internal/adapter"
	"github.com/avolkhin/phototeka/internal/config"
	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := logger.NewClientLogger("photoctl")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fatal(err)
	}

	api, err := adapter.NewHTTPServerAdapter(cfg, log)
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	command, args := os.Args[1], os.Args[2:]

	switch command {
	case "register":
		err = runRegister(ctx, api, args)
	case "login":
		err = runLogin(ctx, api, args)
	case "albums":
		err = runAlbums(ctx, api)
	case "album-new":
		err = runAlbumNew(ctx, api, args)
	case "tags":
		err = runTags(ctx, api)
	case "tag-new":
		err = runTagNew(ctx, api, args)
	case "photos":
		err = runPhotos(ctx, api, args)
	case "upload":
		err = runUpload(ctx, api, args)
	case "search":
		err = runSearch(ctx, api, args)
	case "version":
		err = runVersion(ctx, api)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fatal(err)
	}
}

func runRegister(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := api.Register(ctx, models.RegisterRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("account created"))
	fmt.Printf("id: %d  username: %s\n", resp.User.UserID, resp.User.Username)
	printTokens(resp.Tokens)
	return nil
}

func runLogin(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pair, err := api.Login(ctx, models.LoginRequest{Username: *username, Password: *password})
	if err != nil {
		return err
	}

	printTokens(pair)
	return nil
}

func runAlbums(ctx context.Context, api adapter.ServerAdapter) error {
	albums, err := api.ListAlbums(ctx)
	if err != nil {
		return err
	}

	if len(albums) == 0 {
		fmt.Println(faintStyle.Render("no albums"))
		return nil
	}

	for _, album := range albums {
		fmt.Printf("%s %s\n",
			titleStyle.Render(fmt.Sprintf("#%d %s", album.AlbumID, album.Title)),
			faintStyle.Render(fmt.Sprintf("(%d photos)", len(album.Photos))))
		if album.Description != "" {
			fmt.Println("  " + album.Description)
		}
	}
	return nil
}

func runAlbumNew(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("album-new", flag.ExitOnError)
	title := fs.String("title", "", "album title")
	description := fs.String("description", "", "album description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	album, err := api.CreateAlbum(ctx, models.AlbumRequest{Title: *title, Description: *description})
	if err != nil {
		return err
	}

	fmt.Printf("created album #%d %s\n", album.AlbumID, titleStyle.Render(album.Title))
	return nil
}

func runTags(ctx context.Context, api adapter.ServerAdapter) error {
	tags, err := api.ListTags(ctx)
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		fmt.Println(faintStyle.Render("no tags"))
		return nil
	}

	for _, tag := range tags {
		fmt.Printf("%s %s\n", faintStyle.Render(fmt.Sprintf("#%d", tag.TagID)), tagStyle.Render(tag.Name))
	}
	return nil
}

func runTagNew(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("tag-new", flag.ExitOnError)
	name := fs.String("name", "", "tag name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tag, err := api.CreateTag(ctx, models.TagRequest{Name: *name})
	if err != nil {
		return err
	}

	fmt.Printf("created tag #%d %s\n", tag.TagID, tagStyle.Render(tag.Name))
	return nil
}

func runPhotos(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("photos", flag.ExitOnError)
	album := fs.String("album", "", "comma-separated album IDs to filter by")
	if err := fs.Parse(args); err != nil {
		return err
	}

	albumIDs, err := parseIDList(*album)
	if err != nil {
		return err
	}

	photos, err := api.ListPhotos(ctx, albumIDs)
	if err != nil {
		return err
	}

	printPhotos(photos)
	return nil
}

func runUpload(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	file := fs.String("file", "", "path to the image file")
	title := fs.String("title", "", "photo title")
	description := fs.String("description", "", "photo description")
	album := fs.Int64("album", 0, "album ID")
	tags := fs.String("tags", "", "comma-separated tag IDs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tagIDs, err := parseIDList(*tags)
	if err != nil {
		return err
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	meta := models.PhotoUpload{
		Title:       *title,
		Description: *description,
		AlbumID:     *album,
		TagIDs:      tagIDs,
	}

	photo, err := api.UploadPhoto(ctx, meta, filepath.Base(*file), f)
	if err != nil {
		return err
	}

	fmt.Printf("uploaded photo #%d %s\n", photo.PhotoID, titleStyle.Render(photo.Title))
	return nil
}

func runSearch(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	tags := fs.String("tags", "", "comma-separated tag names")
	if err := fs.Parse(args); err != nil {
		return err
	}

	photos, err := api.SearchPhotos(ctx, strings.Split(*tags, ","))
	if err != nil {
		return err
	}

	printPhotos(photos)
	return nil
}

func runVersion(ctx context.Context, api adapter.ServerAdapter) error {
	printBuildInfo()

	serverVersion, err := api.ServerVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Server version: %s\n", serverVersion)
	return nil
}

func printPhotos(photos []models.Photo) {
	if len(photos) == 0 {
		fmt.Println(faintStyle.Render("no photos"))
		return
	}

	for _, photo := range photos {
		names := make([]string, 0, len(photo.Tags))
		for _, tag := range photo.Tags {
			names = append(names, tag.Name)
		}

		fmt.Printf("%s %s %s\n",
			titleStyle.Render(fmt.Sprintf("#%d %s", photo.PhotoID, photo.Title)),
			faintStyle.Render(photo.UploadedAt.Format("2006-01-02")),
			tagStyle.Render(strings.Join(names, " ")))
	}
}

func printTokens(pair models.TokenPair) {
	fmt.Printf("access:  %s\n", pair.Access)
	fmt.Printf("refresh: %s\n", pair.Refresh)
	fmt.Println(faintStyle.Render("export PHOTOCTL_TOKEN=<access> to authenticate further commands"))
}

func parseIDList(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: photoctl <register|login|albums|album-new|tags|tag-new|photos|upload|search|version> [flags]")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
	os.Exit(1)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

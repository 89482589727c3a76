package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"athlete-intake/internal/uploader"
	"athlete-intake/pkg/file"
)

func splitPaths(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	server := flag.String("server", "http://localhost:3000", "Intake server base URL")
	firstName := flag.String("first-name", "", "Player first name")
	lastName := flag.String("last-name", "", "Player last name")
	email := flag.String("email", "", "Submitter email (becomes reply-to)")
	phone := flag.String("phone", "", "Contact phone")
	team := flag.String("team", "", "Team name")
	position := flag.String("position", "", "Player position")
	gradYear := flag.String("grad-year", "", "Graduation year")
	notes := flag.String("notes", "", "Free-text instructions")
	images := flag.String("images", "", "Comma-separated image paths")
	videos := flag.String("videos", "", "Comma-separated video paths")
	flag.Parse()

	imagePaths := splitPaths(*images)
	videoPaths := splitPaths(*videos)

	for _, p := range append(append([]string{}, imagePaths...), videoPaths...) {
		if _, err := os.Stat(p); err != nil {
			log.Fatalf("Cannot read %s: %v", p, err)
		}
	}
	for _, p := range imagePaths {
		if !file.IsImageFile(p) {
			log.Fatalf("%s does not look like an image", p)
		}
	}
	for _, p := range videoPaths {
		if !file.IsVideoFile(p) {
			log.Fatalf("%s does not look like a video", p)
		}
	}

	sub := &uploader.Submission{
		Form: map[string]string{
			"playerFirstName": *firstName,
			"playerLastName":  *lastName,
			"email":           *email,
			"phone":           *phone,
			"teamName":        *team,
			"position":        *position,
			"gradYear":        *gradYear,
			"notes":           *notes,
		},
		ImagePaths:     imagePaths,
		VideoPaths:     videoPaths,
		RequiredFields: []string{"playerFirstName", "playerLastName", "email"},
		RequireImage:   false,
	}

	client := uploader.New(*server)
	client.OnProgress = func(fileID string, fraction float64) {
		short := fileID
		if len(short) > 8 {
			short = short[:8]
		}
		fmt.Printf("\r[%s] %3.0f%%", short, fraction*100)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Server: %s\n", *server)
	fmt.Printf("Images: %d | Videos: %d\n", len(imagePaths), len(videoPaths))

	outcome, err := client.Submit(ctx, sub)
	if err != nil {
		log.Fatalf("\nSubmission failed: %v", err)
	}

	fmt.Println("\nSubmission accepted")
	for _, u := range outcome.ImageURLs {
		fmt.Printf("  image: %s\n", u)
	}
	for _, u := range outcome.VideoURLs {
		fmt.Printf("  video: %s\n", u)
	}
	if outcome.ID != "" {
		fmt.Printf("  notification id: %s\n", outcome.ID)
	}
}

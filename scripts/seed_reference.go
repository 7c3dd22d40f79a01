// scripts/seed_reference.go
// Loads the member roster and task catalog from CSV into the database,
// replacing whatever is there. Run once per roster update:
//
//	go run ./scripts -members members.csv -tasks tasks.csv
//
// members.csv: member_id,national_id,name,department
// tasks.csv:   name,department,minutes
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/abooda7m/HR-PROJECT/config"
	"github.com/abooda7m/HR-PROJECT/database"
	"github.com/abooda7m/HR-PROJECT/models"
	"github.com/abooda7m/HR-PROJECT/services"
)

func main() {
	membersPath := flag.String("members", "", "path to members CSV")
	tasksPath := flag.String("tasks", "", "path to tasks CSV")
	flag.Parse()

	if *membersPath == "" && *tasksPath == "" {
		log.Fatal("nothing to do: pass -members and/or -tasks")
	}

	cfg := config.Load()
	database.Connect(cfg)
	refs := services.NewReferenceService(cfg)

	if *membersPath != "" {
		rows, err := readCSV(*membersPath)
		if err != nil {
			log.Fatalf("read members: %v", err)
		}
		members := make([]models.Member, 0, len(rows))
		for _, r := range rows {
			if len(r) < 4 {
				continue
			}
			members = append(members, models.Member{
				MemberID:   services.NormalizeMemberID(r[0]),
				NationalID: services.CleanText(r[1]),
				Name:       services.CleanText(r[2]),
				Department: services.CleanText(r[3]),
			})
		}
		if err := refs.ReplaceMembers(members); err != nil {
			log.Fatalf("replace members: %v", err)
		}
		fmt.Printf("loaded %d members\n", len(members))
	}

	if *tasksPath != "" {
		rows, err := readCSV(*tasksPath)
		if err != nil {
			log.Fatalf("read tasks: %v", err)
		}
		tasks := make([]models.Task, 0, len(rows))
		for _, r := range rows {
			if len(r) < 3 {
				continue
			}
			minutes, err := strconv.ParseFloat(services.CleanText(r[2]), 64)
			if err != nil || minutes <= 0 {
				// one bad row must not block the load
				continue
			}
			tasks = append(tasks, models.Task{
				Name:       services.CleanText(r[0]),
				Department: services.CleanText(r[1]),
				Minutes:    minutes,
			})
		}
		if err := refs.ReplaceTasks(tasks); err != nil {
			log.Fatalf("replace tasks: %v", err)
		}
		fmt.Printf("loaded %d tasks\n", len(tasks))
	}
}

// readCSV returns data rows, skipping the header line and a UTF-8 BOM.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	if len(all[0]) > 0 {
		all[0][0] = trimBOM(all[0][0])
	}
	return all[1:], nil
}

func trimBOM(s string) string {
	if len(s) >= 3 && s[0] == 0xEF && s[1] == 0xBB && s[2] == 0xBF {
		return s[3:]
	}
	return s
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"familydirectory/internal/config"
	"familydirectory/internal/location"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	showCmd := flag.NewFlagSet("show", flag.ExitOnError)

	validateFile := validateCmd.String("file", "", "Location file (default: LOCATIONS_PATH)")

	showFile := showCmd.String("file", "", "Location file (default: LOCATIONS_PATH)")
	showState := showCmd.String("state", "", "List the districts of this state")
	showDistrict := showCmd.String("district", "", "List the cities of this district")
	showCity := showCmd.String("city", "", "List the villages of this city")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		os.Exit(handleValidate(pathOr(*validateFile, cfg.LocationsPath)))

	case "show":
		showCmd.Parse(os.Args[2:])
		idx, err := location.Load(pathOr(*showFile, cfg.LocationsPath))
		if err != nil {
			log.Fatalf("Failed to load locations: %v", err)
		}
		handleShow(idx, *showState, *showDistrict, *showCity)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleValidate(path string) int {
	problems, err := location.Validate(path)
	if err != nil {
		log.Printf("Failed to load %s: %v", path, err)
		return 1
	}
	if len(problems) == 0 {
		fmt.Printf("%s: OK\n", path)
		return 0
	}

	for _, p := range problems {
		fmt.Println(p)
	}
	fmt.Printf("%s: %d problem(s)\n", path, len(problems))
	return 1
}

func handleShow(idx *location.Index, state, district, city string) {
	switch {
	case city != "":
		printList("Villages of "+city, idx.VillagesForCity(city))
	case district != "":
		if !idx.HasDistrict(district) {
			fmt.Printf("%s is not a known district\n", district)
			return
		}
		printList("Cities of "+district, idx.CitiesForDistrict(district))
	case state != "":
		printList("Districts of "+state, idx.DistrictsForState(state))
	default:
		for _, s := range idx.States() {
			fmt.Println(s)
			for _, d := range idx.DistrictsForState(s) {
				fmt.Printf("  %s: %s\n", d, strings.Join(idx.CitiesForDistrict(d), ", "))
			}
		}
	}
}

func printList(title string, items []string) {
	fmt.Println(title)
	if len(items) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, item := range items {
		fmt.Printf("  %s\n", item)
	}
}

func pathOr(path, fallback string) string {
	if path != "" {
		return path
	}
	return fallback
}

func printUsage() {
	fmt.Println("Location Reference Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  locations validate [-file <path>]    Check the location file for inconsistencies")
	fmt.Println("  locations show [options]             Print the cascading lookups")
	fmt.Println()
	fmt.Println("Show Options:")
	fmt.Println("  -file <path>        Location file (default: LOCATIONS_PATH)")
	fmt.Println("  -state <name>       List the districts of a state")
	fmt.Println("  -district <name>    List the cities of a district")
	fmt.Println("  -city <name>        List the villages of a city")
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/savikov/countryinfo/internal/countries"
	"github.com/savikov/countryinfo/internal/output"
)

func printCountries(list []countries.Country, notFoundMsg string) {
	if len(list) == 0 {
		exitWithCode(ExitNotFound, notFoundMsg)
	}
	if jsonOutput {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			exitWithCode(1, err.Error())
		}
		fmt.Println(string(data))
		return
	}
	for _, c := range list {
		fmt.Println(output.CountryLine(c))
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every country in the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		printCountries(p.All(), "dataset is empty")
		return nil
	},
}

var phoneCmd = &cobra.Command{
	Use:   "phone <prefix>",
	Short: "List countries sharing a dialing prefix (e.g. +1)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		printCountries(p.ByPhoneCode(args[0]),
			fmt.Sprintf("no country with phone code %q", args[0]))
		return nil
	},
}

var currencyCmd = &cobra.Command{
	Use:   "currency <code>",
	Short: "List countries using a currency (e.g. EUR)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		printCountries(p.ByCurrency(args[0]),
			fmt.Sprintf("no country using currency %q", args[0]))
		return nil
	},
}

var languageCmd = &cobra.Command{
	Use:   "language <code>",
	Short: "List countries associated with a language (e.g. en)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		printCountries(p.ByLanguage(args[0]),
			fmt.Sprintf("no country for language %q", args[0]))
		return nil
	},
}

var regionCmd = &cobra.Command{
	Use:   "region <name>",
	Short: "List countries that have a region with the given name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		printCountries(p.ByRegionName(args[0]),
			fmt.Sprintf("no country with region %q", args[0]))
		return nil
	},
}

var localesCmd = &cobra.Command{
	Use:   "locales <code>",
	Short: "Show locale tags for a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		tags := p.Locales(args[0])
		if len(tags) == 0 {
			exitWithCode(ExitNotFound, fmt.Sprintf("no locales for %q", args[0]))
		}
		if jsonOutput {
			primary, _ := p.PrimaryLocale(args[0])
			data, err := json.MarshalIndent(struct {
				Primary string   `json:"primary"`
				All     []string `json:"all"`
			}{primary, tags}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		fmt.Println(strings.Join(tags, "\n"))
		return nil
	},
}

var flagCmd = &cobra.Command{
	Use:   "flag <code>",
	Short: "Print the emoji flag for a two-letter code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := countries.Flag(args[0])
		if f == "" {
			fmt.Fprintf(os.Stderr, "invalid country code %q\n", args[0])
			os.Exit(ExitInvalidInput)
		}
		fmt.Println(f)
		return nil
	},
}

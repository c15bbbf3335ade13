// Command ip2bin queries an IP2Location or IP2Proxy binary database.
package main

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"

	"github.com/ipverse/ip2bin"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	app := &cli.App{
		Name:      "ip2bin",
		Usage:     "query an IP2Location/IP2Proxy BIN database",
		ArgsUsage: "db_path [ip_addr...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit records as JSON",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail immediately if a record is not found",
			},
		},
		HideHelpCommand: true,
		Action:          run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ip2bin: fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowAppHelp(c)
	}

	db, err := ip2bin.FromFile(c.Args().First())
	if err != nil {
		return err
	}
	defer db.Close()

	if c.NArg() == 1 {
		fmt.Println(db)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	for _, addr := range c.Args().Slice()[1:] {
		r, err := db.LookupString(addr)
		if err != nil {
			if !c.Bool("strict") && isNotFound(err) {
				fmt.Fprintf(os.Stderr, "ip2bin: %s: %v\n", addr, err)
				continue
			}
			return fmt.Errorf("lookup %q: %w", addr, err)
		}
		if c.Bool("json") {
			if err := enc.Encode(r); err != nil {
				return err
			}
		} else if r.Location != nil {
			printLocation(r.Location)
		} else if r.Proxy != nil {
			printProxy(r.Proxy)
		}
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ip2bin.ErrAddressNotFound) || errors.Is(err, ip2bin.ErrAddressNotSupported)
}

func printLocation(r *ip2bin.LocationRecord) {
	fmt.Printf("%s:\n", r.IP)
	if r.Country != nil {
		fmt.Printf("  country: %s (%s)\n", r.Country.LongName, r.Country.ShortName)
	}
	printStr("region", r.Region)
	printStr("city", r.City)
	printStr("district", r.District)
	printStr("zip_code", r.ZipCode)
	if r.Latitude != 0 || r.Longitude != 0 {
		fmt.Printf("  coordinates: %f, %f\n", r.Latitude, r.Longitude)
	}
	printStr("time_zone", r.TimeZone)
	printStr("isp", r.ISP)
	printStr("domain", r.Domain)
	printStr("net_speed", r.NetSpeed)
	printStr("idd_code", r.IDDCode)
	printStr("area_code", r.AreaCode)
	printStr("weather_station_code", r.WeatherStationCode)
	printStr("weather_station_name", r.WeatherStationName)
	printStr("mcc", r.MCC)
	printStr("mnc", r.MNC)
	printStr("mobile_brand", r.MobileBrand)
	if r.Elevation != 0 {
		fmt.Printf("  elevation: %g\n", r.Elevation)
	}
	printStr("usage_type", r.UsageType)
	printStr("address_type", r.AddressType)
	printStr("category", r.Category)
	printStr("asn", r.ASN)
	printStr("as", r.ASName)
}

func printProxy(r *ip2bin.ProxyRecord) {
	fmt.Printf("%s:\n", r.IP)
	fmt.Printf("  is_proxy: %s\n", r.IsProxy)
	printStr("proxy_type", r.ProxyType)
	if r.Country != nil {
		fmt.Printf("  country: %s (%s)\n", r.Country.LongName, r.Country.ShortName)
	}
	printStr("region", r.Region)
	printStr("city", r.City)
	printStr("isp", r.ISP)
	printStr("domain", r.Domain)
	printStr("usage_type", r.UsageType)
	printStr("asn", r.ASN)
	printStr("as", r.ASName)
	printStr("last_seen", r.LastSeen)
	printStr("threat", r.Threat)
	printStr("provider", r.Provider)
}

func printStr(name, v string) {
	if v != "" {
		fmt.Printf("  %s: %s\n", name, v)
	}
}

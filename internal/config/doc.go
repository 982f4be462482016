// Package config provides configuration management for themectl.
//
// Configuration is loaded from YAML files and merged in order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/themectl/config.yaml)
//  3. Project configuration (./.themectl/config.yaml)
//  4. The file named by --config, if any
//
// # Configuration Structure
//
//	scheme: dark
//	palette:
//	  primary:
//	    main: "#1976D2"
//	  grey:
//	    "900": "#000000"
//	output:
//	  format: yaml      # table, json or yaml
//	logging:
//	  level: debug
//
// The palette section is an overlay. Colors that are not listed keep the
// shipped value, so a project can recolor a single swatch without copying
// the whole palette.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	th, err := cfg.Theme()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(th.Lighten(th.Palette.Primary.Main, 10))
package config

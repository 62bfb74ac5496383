// Package config loads registry settings from YAML or JSON files.
//
// Config is a thin typed view over a decoded map; Settings is the
// registry-specific view built from it:
//
//	settings, err := config.LoadSettings("typeconv.yaml")
//	if err != nil {
//	    return err
//	}
//	for _, kind := range settings.Kinds() {
//	    fmt.Println(kind, settings.Registries[kind])
//	}
package config

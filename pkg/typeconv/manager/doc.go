// Package manager keeps named converter registries for an application.
//
// Each kind ("format", "instant", ...) maps to one typeconv.Registry. Lookups
// go straight to the current registry; Add and Remove derive a new registry,
// publish it and tell subscribers:
//
//	m, err := manager.FromSettings(settings, builtin.Catalog(),
//		manager.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//
//	unsubscribe := m.Subscribe(func(c manager.Change) {
//		logger.Info("converters changed", "kind", c.Kind, "op", c.Op)
//	})
//	defer unsubscribe()
//
//	m.Add("format", celsiusFormatter)
//	conv, err := m.SelectValue("format", celsius(21.5))
//
// Registries handed out by Registry stay valid after later changes; they
// simply do not see them.
package manager

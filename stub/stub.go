package stub

// Environment satisfies the lookup function used by option
// purviewcfg.WithLookupEnv. Purpose is to be used as a stub for
// the process environment.
type Environment map[string]string

// LookupEnv returns the value of the key and whether it is set.
func (e Environment) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

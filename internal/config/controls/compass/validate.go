package compass

// Validate checks the compass options. Instant needs no check; its type already limits
// it to absent, true or false.
func (o *Options) Validate() error {
	return o.Options.Validate()
}

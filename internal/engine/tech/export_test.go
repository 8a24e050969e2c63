package tech

// AddLocaleTarget configures one more output target for lang using the options passed to Configure.
func (b *Builder) AddLocaleTarget(lang string) error {
	return b.addPlan(lang)
}

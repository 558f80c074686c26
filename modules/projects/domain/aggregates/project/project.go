package project

// Project is one row of the projects table. Null text columns read as "".
type Project struct {
	id           int64
	slug         string
	title        string
	kind         string
	summary      string
	tags         string
	sourceURL    string
	demoURL      string
	previewImage string
	status       string
	sortOrder    int32
	hasSortOrder bool
}

type Option func(p *Project)

func WithSlug(v string) Option         { return func(p *Project) { p.slug = v } }
func WithTitle(v string) Option        { return func(p *Project) { p.title = v } }
func WithType(v string) Option         { return func(p *Project) { p.kind = v } }
func WithSummary(v string) Option      { return func(p *Project) { p.summary = v } }
func WithTags(v string) Option         { return func(p *Project) { p.tags = v } }
func WithSourceURL(v string) Option    { return func(p *Project) { p.sourceURL = v } }
func WithDemoURL(v string) Option      { return func(p *Project) { p.demoURL = v } }
func WithPreviewImage(v string) Option { return func(p *Project) { p.previewImage = v } }
func WithStatus(v string) Option       { return func(p *Project) { p.status = v } }

// WithSortOrder marks the sort order as present. Without it the record
// carries a null sort order, which is distinct from zero.
func WithSortOrder(v int32) Option {
	return func(p *Project) {
		p.sortOrder = v
		p.hasSortOrder = true
	}
}

func New(id int64, opts ...Option) Project {
	p := Project{id: id}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p Project) ID() int64            { return p.id }
func (p Project) Slug() string         { return p.slug }
func (p Project) Title() string        { return p.title }
func (p Project) Type() string         { return p.kind }
func (p Project) Summary() string      { return p.summary }
func (p Project) Tags() string         { return p.tags }
func (p Project) SourceURL() string    { return p.sourceURL }
func (p Project) DemoURL() string      { return p.demoURL }
func (p Project) PreviewImage() string { return p.previewImage }
func (p Project) Status() string       { return p.status }

// SortOrder reports the sort order and whether the column was non-null.
func (p Project) SortOrder() (int32, bool) { return p.sortOrder, p.hasSortOrder }

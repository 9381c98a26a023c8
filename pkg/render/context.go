package render

// Context is the shared graphics context. It owns the screen framebuffer
// and tracks the current output target, which the lensing capture pass
// temporarily redirects to an offscreen framebuffer.
//
// The context is single-threaded and frame-driven: redirects happen inside
// one frame's update phase and must be restored before the primary draw.
// While redirected, draw calls land on the offscreen target.
type Context struct {
	screenTarget *Framebuffer
	target       *Framebuffer
	saved        []*Framebuffer
}

// NewContext creates a graphics context presenting to the given screen
// framebuffer.
func NewContext(screen *Framebuffer) *Context {
	return &Context{
		screenTarget: screen,
		target:       screen,
	}
}

// Target returns the current output target.
func (c *Context) Target() *Framebuffer {
	return c.target
}

// Screen returns the on-screen framebuffer regardless of redirection.
func (c *Context) Screen() *Framebuffer {
	return c.screenTarget
}

// ViewportSize returns the screen dimensions.
func (c *Context) ViewportSize() Size {
	return c.screenTarget.Size()
}

// Redirected reports whether output currently goes to an offscreen target.
func (c *Context) Redirected() bool {
	return len(c.saved) > 0
}

// SetRenderTarget redirects output to fb, saving the previous target so
// RestoreRenderTarget can put it back, whatever it was.
func (c *Context) SetRenderTarget(fb *Framebuffer) {
	c.saved = append(c.saved, c.target)
	c.target = fb
}

// RestoreRenderTarget restores the output target saved by the matching
// SetRenderTarget call. Restoring with nothing saved is a no-op.
func (c *Context) RestoreRenderTarget() {
	if len(c.saved) == 0 {
		return
	}
	c.target = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

// ResizeScreen replaces the screen framebuffer after a viewport resize.
// An active redirect keeps drawing to its offscreen target; the new screen
// becomes current once all redirects are restored.
func (c *Context) ResizeScreen(width, height int) {
	fresh := NewFramebuffer(width, height)
	if c.target == c.screenTarget {
		c.target = fresh
	}
	for i, s := range c.saved {
		if s == c.screenTarget {
			c.saved[i] = fresh
		}
	}
	c.screenTarget = fresh
}

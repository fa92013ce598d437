package demo

import (
	"fmt"
	"io"
	"primobs/pkg/domain"
	"strings"

	"github.com/go-faster/jx"
)

// Call is one demonstrated call of an assignment API.
type Call struct {
	// Code is the call expression as a caller would write it.
	Code string
	// Compiles reports whether the call is accepted by the type checker.
	Compiles bool
	// Result is the recorded assignment; nil when the call never ran.
	Result *domain.PackAssignment
	// Correct reports whether Result matches the intended tenant and pack.
	Correct bool
	// Diagnostics holds the type errors for calls that do not compile.
	Diagnostics []Diagnostic
}

// Section groups the calls made against one API signature.
type Section struct {
	Title     string
	Signature string
	Calls     []Call
	Summary   string
}

// Report is the full outcome of a demonstration run.
type Report struct {
	TenantID domain.TenantID
	PackID   domain.PackID
	Sections []Section
	Types    []TypeInfo
}

func renderText(w io.Writer, r Report) error {
	var b strings.Builder

	if len(r.Sections) > 0 {
		b.WriteString("Primitive obsession demo\n")
		fmt.Fprintf(&b, "  tenant: %s\n  pack:   %s\n", r.TenantID, r.PackID)
	}

	for i, s := range r.Sections {
		fmt.Fprintf(&b, "\n%d. %s\n   %s\n", i+1, s.Title, s.Signature)
		for _, c := range s.Calls {
			fmt.Fprintf(&b, "\n   %s\n", c.Code)
			switch {
			case !c.Compiles:
				b.WriteString("     rejected at compile time:\n")
				for _, d := range c.Diagnostics {
					fmt.Fprintf(&b, "       %s\n", d)
				}
			case c.Result == nil:
				b.WriteString("     compiles\n")
			default:
				verdict := "correct"
				if !c.Correct {
					verdict = "WRONG, no error raised"
				}
				fmt.Fprintf(&b, "     compiles, ran: tenant=%s pack=%s (%s)\n",
					c.Result.TenantID, c.Result.PackID, verdict)
			}
		}
		if s.Summary != "" {
			fmt.Fprintf(&b, "\n   %s\n", s.Summary)
		}
	}

	if len(r.Types) > 0 {
		if len(r.Sections) > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Type inspection\n")
		for _, t := range r.Types {
			fmt.Fprintf(&b, "  %-18s %-16s underlying %s\n", t.Name, t.Category, t.Underlying)
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func renderJSON(w io.Writer, r Report) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.SetIdent(2)

	e.Obj(func(e *jx.Encoder) {
		if len(r.Sections) > 0 {
			e.Field("tenantId", func(e *jx.Encoder) { e.Str(r.TenantID.String()) })
			e.Field("packId", func(e *jx.Encoder) { e.Str(r.PackID.String()) })
			e.Field("sections", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, s := range r.Sections {
						encodeSection(e, s)
					}
				})
			})
		}
		e.Field("types", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, t := range r.Types {
					e.Obj(func(e *jx.Encoder) {
						e.Field("name", func(e *jx.Encoder) { e.Str(t.Name) })
						e.Field("category", func(e *jx.Encoder) { e.Str(string(t.Category)) })
						e.Field("underlying", func(e *jx.Encoder) { e.Str(t.Underlying) })
					})
				}
			})
		})
	})

	_, err := w.Write(append(e.Bytes(), '\n'))

	return err
}

func encodeSection(e *jx.Encoder, s Section) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("title", func(e *jx.Encoder) { e.Str(s.Title) })
		e.Field("signature", func(e *jx.Encoder) { e.Str(s.Signature) })
		e.Field("calls", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, c := range s.Calls {
					encodeCall(e, c)
				}
			})
		})
		e.Field("summary", func(e *jx.Encoder) { e.Str(s.Summary) })
	})
}

func encodeCall(e *jx.Encoder, c Call) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(c.Code) })
		e.Field("compiles", func(e *jx.Encoder) { e.Bool(c.Compiles) })
		e.Field("result", func(e *jx.Encoder) {
			if c.Result == nil {
				e.Null()

				return
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("tenantId", func(e *jx.Encoder) { e.Str(c.Result.TenantID.String()) })
				e.Field("packId", func(e *jx.Encoder) { e.Str(c.Result.PackID.String()) })
			})
		})
		e.Field("correct", func(e *jx.Encoder) { e.Bool(c.Correct) })
		e.Field("diagnostics", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, d := range c.Diagnostics {
					e.Str(d.String())
				}
			})
		})
	})
}

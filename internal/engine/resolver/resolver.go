// Package resolver selects and orders the task records a run executes.
package resolver

import (
	"fmt"

	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolve expands each requested name into the records of its dependency
// followed by its own records, in file order.
//
// Dependencies are followed one level deep. A dependency record is emitted at
// most once per call, keyed by its source line; the requested task's own
// records are emitted every time they are requested.
//
// Resolve fails only when none of the requested names is defined. The error
// names the last requested name that matched nothing.
func Resolve(requested []string, tasks []domain.Task) ([]domain.Task, error) {
	var (
		plan      []domain.Task
		emitted   = make(map[int]bool)
		matched   bool
		unmatched string
	)

	for _, name := range requested {
		found := false
		for _, t := range tasks {
			if t.Name != name {
				continue
			}
			found = true
			if t.HasDependency() {
				for _, dep := range tasks {
					if dep.Name != t.Depends || emitted[dep.SourceLine] {
						continue
					}
					emitted[dep.SourceLine] = true
					plan = append(plan, dep)
				}
			}
			plan = append(plan, t)
		}
		if found {
			matched = true
		} else {
			unmatched = name
		}
	}

	if !matched {
		return nil, notFound(unmatched)
	}

	return plan, nil
}

func notFound(name string) error {
	err := zerr.Wrap(domain.ErrTaskNotFound, fmt.Sprintf("Don't know how to build task '%s'", name))
	return domain.NewExitError(domain.ExitAborted, zerr.With(err, "task", name))
}

package assembly

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mhemmit/gemmi/errs"
	"github.com/mhemmit/gemmi/geom"
	"github.com/mhemmit/gemmi/internal/options"
	"github.com/mhemmit/gemmi/model"
)

// MakeAssembly builds the model of a biological assembly from m.
//
// Generators are applied in order, and within a generator its operators in
// order. For every operator the targeted chains (or the residues of the
// targeted subchains) are copied, their atoms moved by the operator's
// transform, and the copies renamed with a generator seeded from the chain
// names of m. Chains that are not targeted do not appear in the result.
// m itself is not modified.
//
// Parameters:
//   - asm: the assembly to build
//   - m: the source model
//   - opts: WithNaming, WithLogger
//
// Returns:
//   - *model.Model: a new model with the same name as m
//   - error: errs.ErrChainNamesExhausted under NamingShort, or an option error
func MakeAssembly(asm *model.Assembly, m *model.Model, opts ...Option) (*model.Model, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return makeAssembly(asm, m, cfg)
}

// ChangeToAssembly replaces every model of st with the assembly named name,
// built by MakeAssembly. Connections are dropped, since they refer to the
// original chains.
//
// An unknown name yields errs.ErrAssemblyNotFound listing the valid names, or
// errs.ErrNoAssemblies when st lists none. On error st is left unchanged.
func ChangeToAssembly(st *model.Structure, name string, opts ...Option) error {
	asm := st.FindAssembly(name)
	if asm == nil {
		if len(st.Assemblies) == 0 {
			return errs.ErrNoAssemblies
		}
		return fmt.Errorf("%w, use one of: %s", errs.ErrAssemblyNotFound, strings.Join(st.AssemblyNames(), " "))
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	models := make([]model.Model, len(st.Models))
	for i := range st.Models {
		m, err := makeAssembly(asm, &st.Models[i], cfg)
		if err != nil {
			return fmt.Errorf("model %s: %w", st.Models[i].Name, err)
		}
		models[i] = *m
	}
	st.Models = models
	st.Connections = nil

	return nil
}

func makeAssembly(asm *model.Assembly, m *model.Model, cfg *config) (*model.Model, error) {
	out := &model.Model{Name: m.Name}
	namegen := NewChainNameGeneratorForModel(m, cfg.naming)
	subs := m.SubchainToChain()

	for gi := range asm.Generators {
		gen := &asm.Generators[gi]
		for oi := range gen.Operators {
			op := &gen.Operators[oi]
			if cfg.logger != nil {
				logOperator(cfg.logger, gen, op, m, subs)
			}

			var err error
			switch {
			case len(gen.Chains) != 0:
				err = copyChains(out, m, gen.Chains, op.Transform, namegen)
			case len(gen.Subchains) != 0:
				err = copySubchains(out, m, subs, gen.Subchains, op.Transform, namegen)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// copyChains appends to out a moved copy of every chain of m named in
// targets. Chains sharing a source name get the same new name.
func copyChains(out, m *model.Model, targets []string, tr geom.Transform, namegen *ChainNameGenerator) error {
	newNames := make(map[string]string)
	for i := range m.Chains {
		src := &m.Chains[i]
		if !slices.Contains(targets, src.Name) {
			continue
		}

		name, ok := newNames[src.Name]
		if !ok {
			var err error
			if name, err = namegen.MakeNewName(src.Name, 1); err != nil {
				return err
			}
			newNames[src.Name] = name
		}

		chain := src.Clone()
		chain.Name = name
		for r := range chain.Residues {
			res := &chain.Residues[r]
			moveAtoms(res.Atoms, tr)
			if res.Subchain != "" {
				res.Subchain = name + ":" + res.Subchain
			}
		}
		out.Chains = append(out.Chains, chain)
	}

	return nil
}

// copySubchains appends moved copies of the residues of the targeted
// subchains, grouped into one new chain per source chain.
func copySubchains(out, m *model.Model, subs map[string]string, targets []string, tr geom.Transform, namegen *ChainNameGenerator) error {
	dest := make(map[string]int) // source chain name → index in out.Chains
	for _, sub := range targets {
		owner, ok := subs[sub]
		if !ok {
			continue
		}

		idx, ok := dest[owner]
		if !ok {
			name, err := namegen.MakeNewName(owner, 1)
			if err != nil {
				return err
			}
			out.Chains = append(out.Chains, model.Chain{Name: name})
			idx = len(out.Chains) - 1
			dest[owner] = idx
		}

		chain := &out.Chains[idx]
		for _, src := range m.GetSubchain(sub) {
			res := src.Clone()
			res.Subchain = chain.Name + ":" + src.Subchain
			moveAtoms(res.Atoms, tr)
			chain.Residues = append(chain.Residues, res)
		}
	}

	return nil
}

func moveAtoms(atoms []model.Atom, tr geom.Transform) {
	for i := range atoms {
		atoms[i].Pos = tr.ApplyPosition(atoms[i].Pos)
	}
}

func logOperator(logger *slog.Logger, gen *model.Generator, op *model.Operator, m *model.Model, subs map[string]string) {
	switch {
	case len(gen.Chains) != 0:
		logger.Info("applying operator",
			slog.String("operator", op.Name),
			slog.String("chains", strings.Join(gen.Chains, ",")))
	case len(gen.Subchains) != 0:
		logger.Info("applying operator",
			slog.String("operator", op.Name),
			slog.String("subchains", strings.Join(gen.Subchains, ",")))
	default:
		logger.Info("applying operator", slog.String("operator", op.Name))
	}

	for _, name := range gen.Chains {
		if m.FindChain(name) == nil {
			logger.Warn("no chain", slog.String("chain", name))
		}
	}
	for _, name := range gen.Subchains {
		if _, ok := subs[name]; !ok {
			logger.Warn("no subchain", slog.String("subchain", name))
		}
	}
}

package component

import (
	"errors"
	"fmt"

	"component-generator/internal/analyze"
	"component-generator/internal/binding"
	"component-generator/internal/common"
	"component-generator/internal/diagnostic"
	"component-generator/internal/naming"
)

// maxSuggestions bounds the "did you mean" list of a diagnostic.
const maxSuggestions = 3

// Validate checks a component file against the given type graph. graph may
// be nil, in which case symbol references are reported as errors.
//
// Every binding is checked; the result lists all problems found.
func Validate(cf *ComponentFile, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cf == nil {
		res.AddError("component_is_nil", "component file is nil", "", "")
		return res
	}

	if cf.Version != SupportedVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q, expected %q", cf.Version, SupportedVersion), "", "version")
	}

	if common.IsEmpty(cf.Bindings) {
		res.AddWarning("no_bindings", "component declares no bindings", "", "bindings")
	}

	v := &validator{res: res, resolver: NewResolver(cf, graph), seen: map[string]int{}}

	for i := range cf.Bindings {
		v.checkBinding(i, &cf.Bindings[i])
	}

	return res
}

type validator struct {
	res      *diagnostic.Diagnostics
	resolver *Resolver
	// seen maps binding identities to the index declaring them first.
	seen map[string]int
}

func (v *validator) checkBinding(i int, spec *BindingSpec) {
	label := bindingLabel(i)

	kind, kindErr := binding.ParseKind(spec.Kind)
	if kindErr != nil {
		v.res.AddError("invalid_kind", kindErr.Error(), label, "kind")
	}

	bindingType, typeErr := binding.ParseBindingType(spec.Type)
	if typeErr != nil {
		v.res.AddError("invalid_binding_type", typeErr.Error(), label, "type")
	}

	if kindErr == nil && typeErr == nil &&
		(kind == binding.KindMembersInjection) != (bindingType == binding.TypeMembersInjection) {
		v.res.AddError("invalid_binding_type",
			fmt.Sprintf("binding type %s does not match kind %s", bindingType, kind), label, "type")
	}

	contribution, contribErr := binding.ParseContributionType(spec.Contribution)
	if contribErr != nil {
		v.res.AddError("invalid_contribution", contribErr.Error(), label, "contribution")
	} else if kindErr == nil && kind == binding.KindMembersInjection && contribution != binding.ContributionUnique {
		v.res.AddError("invalid_contribution",
			fmt.Sprintf("%s bindings cannot contribute to a %s multibinding", kind, contribution), label, "contribution")
	}

	var keyType *analyze.TypeInfo

	if spec.Key == "" {
		v.res.AddError("missing_key", "binding key is required", label, "key")
	} else {
		t, err := v.resolver.parser.Parse(spec.Key)
		if err != nil {
			v.typeError(label, "key", err)
		} else {
			keyType = t
		}
	}

	if spec.Framework != "" {
		if _, err := v.resolver.ResolveFramework(spec.Framework); err != nil {
			v.typeError(label, "framework", err)
		}
	}

	var invalidIdent *InvalidIdentifierError
	if err := checkQualifier(spec.Qualifier); errors.As(err, &invalidIdent) {
		v.res.AddError("invalid_identifier", err.Error(), label, invalidIdent.Field)
	}

	v.checkOrigin(label, spec)

	if keyType != nil && kindErr == nil && contribErr == nil {
		v.duplicate(i, spec, binding.NewKey(keyType, spec.Qualifier), kind, contribution)
	}
}

func (v *validator) checkOrigin(label string, spec *BindingSpec) {
	if spec.Origin != nil && spec.Symbol != "" {
		v.res.AddError("origin_and_symbol", "origin and symbol are mutually exclusive", label, "symbol")
		return
	}

	if spec.Origin != nil {
		_, err := OriginFromSpec(spec.Origin)

		var invalidIdent *InvalidIdentifierError

		switch {
		case err == nil:
		case errors.As(err, &invalidIdent):
			v.res.AddError("invalid_identifier", err.Error(), label, invalidIdent.Field)
		case errors.Is(err, ErrInvalidOriginKind):
			v.res.AddError("invalid_origin_kind", err.Error(), label, "origin.kind")
		case errors.Is(err, ErrMissingEnclosing):
			v.res.AddError("missing_enclosing", err.Error(), label, "origin.enclosing")
		default:
			v.res.AddError("missing_origin_name", err.Error(), label, "origin.name")
		}

		return
	}

	if spec.Symbol == "" {
		return
	}

	ref, err := ParseSymbolRef(spec.Symbol)
	if err != nil {
		v.res.AddError("unknown_symbol", err.Error(), label, "symbol")
		return
	}

	_, err = v.resolver.ResolveSymbol(ref)

	var (
		unknownPkg *analyze.UnknownPackageError
		unknownSym *UnknownSymbolError
	)

	switch {
	case err == nil:
	case errors.Is(err, ErrSymbolNeedsGraph):
		v.res.AddError("symbol_needs_graph",
			fmt.Sprintf("symbol %q cannot be resolved: %v", spec.Symbol, err), label, "symbol")
	case errors.As(err, &unknownPkg):
		v.unknownImport(label, "symbol", unknownPkg)
	case errors.As(err, &unknownSym):
		v.res.AddErrorWithSuggestions("unknown_symbol", err.Error(), label, "symbol",
			naming.Suggest(ref.Name, unknownSym.Candidates, maxSuggestions))
	default:
		v.res.AddError("unknown_symbol", err.Error(), label, "symbol")
	}
}

// duplicate reports a binding declared twice. Multibinding contributions
// may share a key as long as they come from different declarations.
func (v *validator) duplicate(i int, spec *BindingSpec, key binding.Key, kind binding.Kind, contribution binding.ContributionType) {
	id := kind.String() + "|" + key.String()
	if contribution.IsMultibinding() {
		id += "|" + contribution.String() + "|" + spec.Symbol
		if spec.Origin != nil {
			id += "|" + spec.Origin.Kind + ":" + spec.Origin.Name + ":" + spec.Origin.Enclosing
		}
	}

	if first, ok := v.seen[id]; ok {
		v.res.AddError("duplicate_binding",
			fmt.Sprintf("duplicate %s binding for %s, first declared at %s", kind, key, bindingLabel(first)),
			bindingLabel(i), "key")

		return
	}

	v.seen[id] = i
}

func (v *validator) typeError(label, field string, err error) {
	var unknownPkg *analyze.UnknownPackageError
	if errors.As(err, &unknownPkg) {
		v.unknownImport(label, field, unknownPkg)
		return
	}

	v.res.AddError("invalid_type", err.Error(), label, field)
}

func (v *validator) unknownImport(label, field string, err *analyze.UnknownPackageError) {
	aliases := common.SortedKeys(v.resolver.imports)

	v.res.AddErrorWithSuggestions("unknown_import", err.Error(), label, field,
		naming.Suggest(err.Alias, aliases, maxSuggestions))
}

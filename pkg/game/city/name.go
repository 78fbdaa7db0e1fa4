package city

// OccupantName returns the user-visible name of an occupant.
// The name property is a type/group/instance key into the localized string table.
func OccupantName(o Occupant, strings StringTable) (string, bool) {
	if o == nil || strings == nil {
		return "", false
	}

	props := o.Properties()
	if props == nil {
		return "", false
	}

	value, ok := props.Property(PropertyUserVisibleName)
	if !ok || value == nil || value.Type() != VariantUint32Array {
		return "", false
	}

	tgi := value.Uint32s()
	if len(tgi) != 3 {
		return "", false
	}

	return strings.LocalizedString(tgi[1], tgi[2])
}

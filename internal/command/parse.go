package command

// Parse validates a tokenized input line against the catalog and
// returns a dispatchable Message. The first token is the command name,
// the rest are its arguments. When the definition declares a value
// mapping every argument must be one of its keys and is replaced by
// the device code.
func Parse(tokens []string) (Message, error) {
	if len(tokens) == 0 {
		return Message{}, ErrEmptyInput
	}
	def, ok := Lookup(tokens[0])
	if !ok {
		return Message{}, &UnknownCommandError{Name: tokens[0]}
	}
	args := tokens[1:]
	if len(args) != def.Arity {
		return Message{}, &ArityError{Command: def.Name, Want: def.Arity, Got: len(args)}
	}
	out := make([]string, 0, def.Arity)
	for _, arg := range args {
		if def.Mapping != nil {
			code, ok := def.Mapping[arg]
			if !ok {
				return Message{}, &UnknownArgumentError{Command: def.Name, Value: arg}
			}
			arg = code
		}
		out = append(out, arg)
	}
	return Message{Def: def, Args: out}, nil
}

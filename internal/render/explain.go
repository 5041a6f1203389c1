package render

import (
	"fmt"
	"strings"

	"github.com/absurdtty/ttymood/internal/chaos"
)

// renderExplain explains commands in deeply unhelpful ways. The mood
// itself is not consulted, but without a signature the output is a
// fixed template with no chaos draws.
func renderExplain(_ view, ok bool, ch *chaos.Chaos, ctx Context) string {
	if len(ctx.Args) == 0 {
		return "EXPLANATION: You asked me to explain nothing.\nThis is the most honest request I've received.\n"
	}
	if !ok {
		cmd := ctx.Args[0]
		return fmt.Sprintf("EXPLANATION: '%s': A command. It does things.\n\nFor actual help, try 'man %s' or '%s --help'.\n",
			cmd, cmd, cmd)
	}

	cmdStr := strings.Join(ctx.Args, " ")
	switch ctx.Args[0] {
	case "rm":
		return explainRm(ch, cmdStr)
	case "sudo":
		return explainSudo(ch)
	case "git":
		return explainGit(ch, ctx.Args)
	case "cd":
		return explainCd(ch)
	case "ls":
		return explainPickOne(ch, []string{
			"Looking at what you have. Deciding what to do: delayed.",
			"The first step of any plan that leads nowhere.",
			"Proof that files exist. Action: pending.",
			"Reconnaissance without mission.",
		})
	case "cat":
		return explainPickOne(ch, []string{
			"Reading without understanding.",
			"The file's contents, raw and unforgiving.",
			"Looking at text. Comprehension: optional.",
			"Named after an animal that doesn't come when called. Fitting.",
		})
	case "grep":
		return explainPickOne(ch, []string{
			"Finding needles in haystacks. The haystack: your codebase.",
			"Proof that the thing you're looking for exists. Somewhere.",
			"Search. Hopefully find. Context: minimal.",
			"Regular expressions: the language of mild insanity.",
		}) + "\nTIP: If the regex works first try, be suspicious.\n"
	case "find":
		return explainPickOne(ch, []string{
			"Searching for files. Finding more than expected. Always.",
			"Like grep, but for existence rather than content.",
			"The -exec flag: where things get interesting. Or dangerous.",
		}) + "\nNOTE: The thing you're looking for is in the last place you look.\n      Because you stop looking after that.\n"
	case "curl":
		return explainPickOne(ch, []string{
			"Asking the internet for things. Politely.",
			"HTTP: the language of machines talking to machines.",
			"What could go wrong? (Timeouts. Timeouts could go wrong.)",
		}) + "\nWARNING: curl | bash is a trust exercise.\n         Do you trust the internet?\n"
	case "chmod":
		return explainPickOne(ch, []string{
			"Permission management. The numbers mean things.",
			"777: The 'I give up on security' option.",
			"Deciding who can do what to whom.",
		}) + "\nCOMMON USAGE: chmod +x thing.sh, then wondering why it doesn't work.\n"
	case "kill":
		return explainPickOne(ch, []string{
			"Asking a process to stop. Firmly.",
			"Signal delivery. Some signals are suggestions. -9 is not.",
			"The nuclear option for misbehaving software.",
		}) + "\nNOTE: kill -9: When you really mean it.\n      The process doesn't get to argue.\n"
	case "man":
		return explainPickOne(ch, []string{
			"The manual. Which you're reading instead of experimenting.",
			"Documentation written by people who already understand.",
			"RTFM incarnate.",
		}) + "\nIRONY: You're asking this tool instead.\n"
	case "exit", "logout":
		return explainPickOne(ch, []string{
			"Leaving. The terminal will miss you.",
			"The correct response to most situations.",
			"Acknowledgment that you're done. (Are you?)",
		}) + "\nNOTE: There is no undo. But you can always come back.\n"
	}
	return explainGeneric(ch, ctx.Args[0])
}

func explainPickOne(ch *chaos.Chaos, observations []string) string {
	return fmt.Sprintf("EXPLANATION: %s\n", chaos.MustPick(ch, observations))
}

func explainRm(ch *chaos.Chaos, cmdStr string) string {
	if strings.Contains(cmdStr, "-rf") || strings.Contains(cmdStr, "-fr") {
		var b strings.Builder
		b.WriteString("EXPLANATION: The irreversible gesture.\n\n")
		b.WriteString("MECHANISM: Asks no questions. Provides no confirmations.\n")
		b.WriteString("           Trusts you completely. This is its weakness.\n\n")
		b.WriteString("HISTORICAL NOTE: Has ended more careers than any other 8 characters.\n\n")
		b.WriteString("RECOMMENDED USE: Never, unless absolutely certain.\n")
		b.WriteString("                 Then reconsider.\n\n")
		b.WriteString("SAFETY: None. That is the point.\n")
		return b.String()
	}

	metaphor := chaos.MustPick(ch, []string{
		"Digital cremation.",
		"The delete key, but committed.",
		"Entropy's friend.",
		"Marie Kondo for filesystems.",
	})
	return fmt.Sprintf("EXPLANATION: %s\n\nWHAT IT DOES: Removes things. Permanently.\nWHAT IT DOESN'T DO: Ask twice. Forgive.\n", metaphor)
}

func explainSudo(ch *chaos.Chaos) string {
	observation := chaos.MustPick(ch, []string{
		"Temporarily grants you the powers of someone more trusted.",
		"The system says 'are you sure?' This says 'I am sure.'",
		"Power without accountability. Use wisely.",
		"Your password is the key. The system is the lock. sudo picks it.",
	})

	var b strings.Builder
	b.WriteString("EXPLANATION: The magic word for adults.\n\n")
	fmt.Fprintf(&b, "OBSERVATION: %s\n\n", observation)
	b.WriteString("COMMON USAGE: When permission is denied but confidence is not.\n")
	b.WriteString("WARNING: With great power comes great opportunity for mistakes.\n")
	return b.String()
}

func explainGit(ch *chaos.Chaos, args []string) string {
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	switch sub {
	case "push":
		return "EXPLANATION: Sharing your problems with others.\n\nMECHANISM: Transmits your local confusion to a remote location.\nCONSEQUENCE: Now it's everyone's problem.\n"
	case "pull":
		return "EXPLANATION: Importing other people's problems.\n\nMECHANISM: Downloads confusion from elsewhere.\nHOPE: That their confusion is compatible with yours.\n"
	case "commit":
		note := chaos.MustPick(ch, []string{
			"The message is a lie you tell your future self.",
			"'-m \"fix\"' - the most honest message.",
			"Future you will not understand. Current you barely does.",
		})
		return fmt.Sprintf("EXPLANATION: A promise. To yourself. That you'll explain later.\n\nNOTE: %s\n", note)
	case "status":
		return "EXPLANATION: Asking git if you've messed up yet.\n\nFREQUENCY OF USE: Directly proportional to anxiety.\nUSEFUL INFORMATION PROVIDED: Sometimes.\nPEACE OF MIND PROVIDED: Rarely.\n"
	case "rebase":
		return "EXPLANATION: Lying about history.\n\nMECHANISM: Pretends your commits happened differently.\nETHICS: Debatable.\nCONSEQUENCES: Often surprising.\n"
	}

	observation := chaos.MustPick(ch, []string{
		"A distributed system for managing regret.",
		"Version control: the idea that past mistakes should be preserved.",
		"Time travel for code. Side effects: merge conflicts.",
		"The answer to 'what did I change?' (Usually.)",
	})
	return fmt.Sprintf("EXPLANATION: %s\n", observation)
}

func explainCd(ch *chaos.Chaos) string {
	observation := chaos.MustPick(ch, []string{
		"Movement without progress.",
		"The illusion of getting somewhere.",
		"Directory tourism.",
		"Changing location. Rarely changing outcome.",
	})
	return fmt.Sprintf("EXPLANATION: %s\n\nYou are now somewhere else.\nThe problems followed.\n", observation)
}

func explainGeneric(ch *chaos.Chaos, cmd string) string {
	observations := []string{
		fmt.Sprintf("'%s': A command. It does things.", cmd),
		fmt.Sprintf("'%s': Presumably useful. To someone.", cmd),
		fmt.Sprintf("'%s': The documentation exists. Somewhere.", cmd),
		fmt.Sprintf("'%s': Type it and find out.", cmd),
		fmt.Sprintf("'%s': I'm sure you know what you're doing.", cmd),
	}
	chaos.Shuffle(ch, observations)
	return fmt.Sprintf("EXPLANATION: %s\n\nFor actual help, try 'man %s' or '%s --help'.\n",
		observations[0], cmd, cmd)
}
